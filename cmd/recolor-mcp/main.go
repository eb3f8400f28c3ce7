package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ironsheep/recolor-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if Version != "dev" {
		server.Version = Version
	}

	app := &cli.App{
		Name:  "recolor-mcp",
		Usage: "recolor images onto named palettes, as an MCP server or from the command line",
		Description: "Without a command, recolor-mcp serves MCP over stdin/stdout.\n" +
			"Configure it in your MCP client (e.g., Claude Desktop).",
		UseShortOptionHandling: true,
		HideVersion:            true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "palettes-file",
				Usage:   "JSON palette definitions merged over the built-in palettes",
				EnvVars: []string{"RECOLOR_PALETTES_FILE"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "set to debug for verbose logging",
				Value:   "info",
				EnvVars: []string{"RECOLOR_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    "version",
				Aliases: []string{"v"},
				Usage:   "print version information",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "serve MCP over stdin/stdout (default)",
				Action: serve,
			},
			{
				Name:  "palettes",
				Usage: "list palettes and groups",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "print the merged palette definitions as JSON",
					},
				},
				Action: listPalettes,
			},
			{
				Name:  "recolor",
				Usage: "map every visible pixel to its nearest palette color",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "palette",
						Aliases: []string{"p"},
						Usage:   "registered palette name",
					},
					&cli.StringSliceFlag{
						Name:    "color",
						Aliases: []string{"c"},
						Usage:   "explicit palette color, repeatable (hex, r,g,b, gray level or SVG name)",
					},
					&cli.StringFlag{
						Name:     "in",
						Aliases:  []string{"i"},
						Usage:    "input image path",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "out",
						Aliases:  []string{"o"},
						Usage:    "output image path",
						Required: true,
					},
				},
				UseShortOptionHandling: true,
				Action:                 recolorImage,
			},
			{
				Name:  "remap",
				Usage: "swap exact source palette colors for target palette colors",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "source",
						Aliases: []string{"s"},
						Usage:   "source palette name",
						Value:   "Default",
					},
					&cli.StringFlag{
						Name:     "target",
						Aliases:  []string{"t"},
						Usage:    "target palette name",
						Required: true,
					},
					&cli.BoolFlag{
						Name:    "emissive",
						Aliases: []string{"e"},
						Usage:   "keep only remapped pixels",
					},
					&cli.StringFlag{
						Name:     "in",
						Aliases:  []string{"i"},
						Usage:    "input image path",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "out",
						Aliases:  []string{"o"},
						Usage:    "output image path",
						Required: true,
					},
				},
				UseShortOptionHandling: true,
				Action:                 remapImage,
			},
			{
				Name:      "extract",
				Usage:     "print the dominant colors of an image as a palette",
				ArgsUsage: "IMAGE",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Usage:   "maximum number of colors",
						Value:   5,
					},
				},
				Action: extractPalette,
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("version") {
				fmt.Printf("recolor-mcp %s\n", Version)
				fmt.Printf("  Build time: %s\n", BuildTime)
				fmt.Printf("  Git commit: %s\n", GitCommit)
				os.Exit(0)
			}
			if c.String("log-level") == "debug" {
				log.Printf("Recolor MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
			}
			return nil
		},
		Action: serve,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
