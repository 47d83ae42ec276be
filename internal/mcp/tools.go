package mcp

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/claude/ftracker/internal/ingest"
	"github.com/claude/ftracker/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolSummarizeWorkout = mcp.NewTool("summarize_workout",
	mcp.WithDescription("Summarize one sensor package as the human-readable workout line (type, duration, distance, mean speed, calories)."),
	mcp.WithString("type", mcp.Required(), mcp.Description("Workout type code"), mcp.Enum("SWM", "RUN", "WLK")),
	mcp.WithArray("values", mcp.Required(),
		mcp.Description("Ordered readings. RUN: action, duration, weight. WLK: action, duration, weight, height. SWM: action, duration, weight, length_pool, count_pool."),
		mcp.Items(map[string]any{"type": "number"}),
	),
)

var toolWorkoutMetrics = mcp.NewTool("workout_metrics",
	mcp.WithDescription("Compute distance (km), mean speed (km/h) and calories for one sensor package. Returns raw numbers."),
	mcp.WithString("type", mcp.Required(), mcp.Description("Workout type code"), mcp.Enum("SWM", "RUN", "WLK")),
	mcp.WithArray("values", mcp.Required(),
		mcp.Description("Ordered readings, see ftracker://workout_types."),
		mcp.Items(map[string]any{"type": "number"}),
	),
)

var toolSummarizeBatch = mcp.NewTool("summarize_batch",
	mcp.WithDescription("Summarize an ordered batch of sensor packages. Invalid packages produce a diagnostic line and do not stop the batch."),
	mcp.WithArray("packages", mcp.Required(),
		mcp.Description("Packages in order, each {\"type\": code, \"values\": [numbers]}"),
		mcp.Items(map[string]any{
			"type": "object",
			"properties": map[string]any{
				"type":   map[string]any{"type": "string"},
				"values": map[string]any{"type": "array", "items": map[string]any{"type": "number"}},
			},
			"required": []string{"type", "values"},
		}),
	),
)

// --- Tool handlers ---

func (h *handlers) summarizeWorkout(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pkg, err := packageFromArgs(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	msg, err := ingest.Summarize(pkg)
	if err != nil {
		h.log.Warn("mcp summarize_workout", "type", pkg.Type, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(msg.Message()), nil
}

func (h *handlers) workoutMetrics(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pkg, err := packageFromArgs(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	msg, err := ingest.Summarize(pkg)
	if err != nil {
		h.log.Warn("mcp workout_metrics", "type", pkg.Type, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(msg)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// batchResult is the summarize_batch payload.
type batchResult struct {
	Lines  []string       `json:"lines"`
	Result *ingest.Result `json:"result"`
}

func (h *handlers) summarizeBatch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := req.GetArguments()["packages"].([]any)
	if !ok {
		return mcp.NewToolResultError("packages parameter is required"), nil
	}

	packages := make([]models.Package, 0, len(raw))
	for i, item := range raw {
		args, ok := item.(map[string]any)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("package %d: expected an object", i+1)), nil
		}
		pkg, err := packageFromArgs(args)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("package %d: %v", i+1, err)), nil
		}
		packages = append(packages, pkg)
	}

	var out bytes.Buffer
	res, err := ingest.NewProvider(ingest.OutputText, h.log).Ingest(ctx, packages, &out)
	if err != nil {
		h.log.Error("mcp summarize_batch", "error", err)
		return mcp.NewToolResultError("batch failed: " + err.Error()), nil
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if out.Len() == 0 {
		lines = []string{}
	}

	result, err := mcp.NewToolResultJSON(batchResult{Lines: lines, Result: res})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// packageFromArgs reads the type and values arguments of a single package.
func packageFromArgs(args map[string]any) (models.Package, error) {
	code, ok := args["type"].(string)
	if !ok || code == "" {
		return models.Package{}, fmt.Errorf("type parameter is required")
	}
	values, err := toFloats(args["values"])
	if err != nil {
		return models.Package{}, err
	}
	return models.Package{Type: code, Values: values}, nil
}

func toFloats(v any) ([]float64, error) {
	switch vals := v.(type) {
	case []float64:
		return vals, nil
	case []any:
		out := make([]float64, 0, len(vals))
		for i, item := range vals {
			switch n := item.(type) {
			case float64:
				out = append(out, n)
			case int:
				out = append(out, float64(n))
			default:
				return nil, fmt.Errorf("values[%d]: expected a number, got %T", i, item)
			}
		}
		return out, nil
	case nil:
		return nil, fmt.Errorf("values parameter is required")
	default:
		return nil, fmt.Errorf("values: expected an array, got %T", v)
	}
}
