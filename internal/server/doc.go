// Package server implements the MCP (Model Context Protocol) server for image recoloring.
//
// This package provides a JSON-RPC 2.0 server that exposes the recoloring engine
// through the MCP protocol, so an assistant or any MCP-compatible client can list
// palettes and recolor images without linking against the engine.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Palette Registry:
//   - palette_list: All palettes with their colors
//   - palette_get: One palette by name
//   - palette_groups: Named selections of palettes
//   - palette_extract: Derive a palette from an image
//
// Image Operations:
//   - image_info: Dimensions, format and color statistics
//   - image_recolor: Map visible pixels to the nearest palette colors
//   - image_remap: Exact source-to-target color swap, optionally emissive
//
// # State
//
// The only state shared between requests is the palette registry, which is
// read-only. Images are read from disk on every call and nothing is cached,
// so each tool call owns its pixel buffers and color match cache.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(palette.Default())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
