// Package studytools provides MCP tool handlers over the ThinkLock store.
//
// Each tool follows the same shape:
// - A struct holding the *store.Store, injected via constructor
// - Definition() returns the mcp.Tool schema
// - Handle() validates arguments, calls one repository method and
//   formats the result
//
// Repository failures are returned as tool-result errors, never as Go errors.
package studytools

import (
	"encoding/json"
	"fmt"

	"github.com/eeshamoona/thinklock/internal/store"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"
)

// idArg extracts a required integer id. Clients send JSON numbers (float64)
// or numeric strings; both are accepted.
func idArg(req mcp.CallToolRequest, key string) (int64, error) {
	v, ok := req.GetArguments()[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("'%s' is required", key)
	}
	id, err := cast.ToInt64E(v)
	if err != nil {
		return 0, fmt.Errorf("'%s' must be an integer", key)
	}
	return id, nil
}

// optionalIDArg is idArg for arguments that may be omitted.
func optionalIDArg(req mcp.CallToolRequest, key string) (*int64, error) {
	if v, ok := req.GetArguments()[key]; !ok || v == nil {
		return nil, nil
	}
	id, err := idArg(req, key)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// storeErrorResult formats a repository error for the client.
func storeErrorResult(err error) *mcp.CallToolResult {
	e := store.AsError(err)
	return mcp.NewToolResultError(fmt.Sprintf("%s (status %d)", e.Message, e.Status()))
}

func encodeJSON(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}
	return string(b), nil
}

// jsonResult renders v as indented JSON text.
func jsonResult(v any) *mcp.CallToolResult {
	text, err := encodeJSON(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultText(text)
}
