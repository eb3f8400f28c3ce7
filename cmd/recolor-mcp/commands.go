package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ironsheep/recolor-mcp/internal/imaging"
	"github.com/ironsheep/recolor-mcp/internal/palette"
	"github.com/ironsheep/recolor-mcp/internal/recolor"
	"github.com/ironsheep/recolor-mcp/internal/server"
)

// loadRegistry builds the palette registry once at startup: the built-in
// palettes, with the definitions in path merged over them when path is set.
func loadRegistry(path string) (*palette.Registry, error) {
	defs := palette.DefaultDefinitions()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open palettes file: %w", err)
		}
		defer f.Close()

		extra, err := palette.ReadDefinitions(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defs = defs.Merge(extra)
	}

	return palette.NewRegistry(defs)
}

func registryFromFlags(c *cli.Context) (*palette.Registry, error) {
	reg, err := loadRegistry(c.String("palettes-file"))
	if err != nil {
		return nil, err
	}
	if c.String("log-level") == "debug" {
		log.Printf("Loaded %d palette(s): %s", len(reg.List()), strings.Join(reg.List(), ", "))
	}
	return reg, nil
}

func serve(c *cli.Context) error {
	reg, err := registryFromFlags(c)
	if err != nil {
		return err
	}
	return server.New(reg).Run()
}

func listPalettes(c *cli.Context) error {
	reg, err := registryFromFlags(c)
	if err != nil {
		return err
	}

	if c.Bool("json") {
		return palette.WriteDefinitions(os.Stdout, reg.Definitions())
	}

	for _, name := range reg.List() {
		p, err := reg.Get(name)
		if err != nil {
			return err
		}
		fmt.Printf("%-16s %s\n", name, strings.Join(p.Hex(), " "))
	}
	for _, g := range reg.Groups() {
		fmt.Printf("group %q: %s\n", g.Name, strings.Join(g.Palettes, ", "))
	}
	return nil
}

func recolorImage(c *cli.Context) error {
	name := c.String("palette")
	specs := c.StringSlice("color")
	if (name == "") == (len(specs) == 0) {
		return errors.New("exactly one of --palette or --color is required")
	}

	reg, err := registryFromFlags(c)
	if err != nil {
		return err
	}
	data, err := imaging.ReadFile(c.String("in"))
	if err != nil {
		return err
	}

	engine := recolor.NewEngine(reg)
	var res *recolor.Result
	if name != "" {
		res, err = engine.Recolor(data, name)
	} else {
		res, err = engine.RecolorSpecs(data, specs)
	}
	if err != nil {
		return err
	}

	return writeOutput(c.String("out"), res)
}

func remapImage(c *cli.Context) error {
	reg, err := registryFromFlags(c)
	if err != nil {
		return err
	}
	data, err := imaging.ReadFile(c.String("in"))
	if err != nil {
		return err
	}

	res, err := recolor.NewEngine(reg).Remap(data, c.String("source"), c.String("target"), c.Bool("emissive"))
	if err != nil {
		return err
	}
	return writeOutput(c.String("out"), res)
}

func extractPalette(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("extract takes exactly one image path")
	}
	data, err := imaging.ReadFile(c.Args().First())
	if err != nil {
		return err
	}
	img, _, err := imaging.DecodePixels(data)
	if err != nil {
		return err
	}

	p, err := palette.Extract("extracted", img, c.Int("count"))
	if err != nil {
		return err
	}
	fmt.Println(strings.Join(p.Hex(), " "))
	return nil
}

func writeOutput(path string, res *recolor.Result) error {
	if err := os.WriteFile(path, res.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write output image: %w", err)
	}
	log.Printf("Wrote %s (%dx%d %s, palette %s)", path, res.Width, res.Height, res.Format, res.Palette)
	return nil
}
