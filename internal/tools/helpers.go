// Package tools implements the MCP tool handlers for mdscope.
//
// Each tool is a struct with its dependencies injected via constructor,
// a Definition() derived from the declarative contract catalog, and a
// Handle() that runs the call. Every handler validates its arguments through
// the contract registry before doing any work — the registry is the
// gatekeeper, handlers never trust raw arguments.
package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mdscope/mdscope/internal/contract"
)

// definitionFor derives the mcp.Tool definition for a registered tool from
// its contract spec, so the wire schema and the validation layer can never
// drift apart. Panics on an unregistered name — that is a wiring mistake
// caught at startup, not a request-time condition.
func definitionFor(registry *contract.Registry, name string) mcp.Tool {
	spec, found := registry.GetToolSpec(name)
	if !found {
		panic(fmt.Sprintf("tools: %q is not in the contract catalog", name))
	}

	opts := []mcp.ToolOption{mcp.WithDescription(spec.Description)}
	for _, p := range spec.Parameters {
		var propOpts []mcp.PropertyOption
		if p.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		propOpts = append(propOpts, mcp.Description(p.Description))

		switch p.Type {
		case contract.TypeString:
			opts = append(opts, mcp.WithString(p.Name, propOpts...))
		case contract.TypeEnum:
			propOpts = append(propOpts, mcp.Enum(p.AllowedValues...))
			opts = append(opts, mcp.WithString(p.Name, propOpts...))
		case contract.TypeInteger, contract.TypeNumber:
			opts = append(opts, mcp.WithNumber(p.Name, propOpts...))
		case contract.TypeBoolean:
			opts = append(opts, mcp.WithBoolean(p.Name, propOpts...))
		case contract.TypeArray:
			opts = append(opts, mcp.WithArray(p.Name, propOpts...))
		case contract.TypeObject:
			opts = append(opts, mcp.WithObject(p.Name, propOpts...))
		}
	}
	return mcp.NewTool(name, opts...)
}

// validate runs the registry over the raw arguments. It returns a non-nil
// error result when the call must be rejected; warnings alone pass.
func validate(registry *contract.Registry, name string, req mcp.CallToolRequest) *mcp.CallToolResult {
	ok, problems := registry.ValidateToolCall(name, req.GetArguments())
	if ok {
		return nil
	}
	return mcp.NewToolResultError("invalid call to " + name + ":\n" + strings.Join(problems, "\n"))
}

// jsonResult marshals v as an indented JSON text result.
func jsonResult(v any) *mcp.CallToolResult {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding response: %v", err))
	}
	return mcp.NewToolResultText(string(out))
}

// intArg extracts an integer argument, returning defaultVal if the key is
// missing or not a number (JSON numbers are float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// boolArg extracts a boolean argument.
func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}
