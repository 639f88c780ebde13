package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/selwatch/internal/probe"
)

// toText serializes a tool result to YAML for the MCP response.
func toText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

func (s *Server) handleInspectText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	opts, err := s.inspectOptions(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	res, err := probe.Inspect(ctx, s.provider, opts)
	if err != nil {
		s.log.Warn("inspect_text failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toText(res)), nil
}

func (s *Server) handleListPresets(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(toText(probe.DescribePresets())), nil
}

// inspectOptions merges tool arguments over the server defaults.
func (s *Server) inspectOptions(params map[string]interface{}) (probe.InspectOptions, error) {
	opts := probe.InspectOptions{
		Source:     s.cfg.Source,
		Predicates: s.cfg.Predicates,
		MaxChars:   intParam(params, "max_chars", s.cfg.MaxChars),
		Logger:     s.log,
	}

	if raw := stringParam(params, "source", ""); raw != "" {
		src, err := probe.ParseSource(raw)
		if err != nil {
			return opts, err
		}
		opts.Source = src
	}
	if opts.Source == "" {
		opts.Source = probe.SourceFocus
	}

	if require := listParam(params, "require"); len(require) > 0 {
		preds, err := probe.ParsePredicates(require)
		if err != nil {
			return opts, err
		}
		opts.Predicates = preds
	} else if preset := stringParam(params, "preset", ""); preset != "" {
		preds, err := probe.LookupPreset(preset)
		if err != nil {
			return opts, err
		}
		opts.Predicates = preds
	}
	return opts, nil
}
