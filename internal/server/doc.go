// Package server implements the MCP (Model Context Protocol) server for the
// grayscale / binarize pipeline.
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
//   - image_load: Load image, get metadata and a content summary
//   - image_grayscale: BT.601 luminance image as base64 PNG
//   - image_binarize: Black and white image at a threshold as base64 PNG
//   - image_compose: Original, grayscale and binary side by side as base64 PNG
//
// Tools that binarize accept an optional "threshold" (0-255); when absent the
// threshold given to New is used.
//
// # Image Caching
//
// Loaded images are cached by path for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with code
// -32000, message "Tool execution failed" and the Go error string as data.
package server
