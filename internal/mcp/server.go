package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("ftracker", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Fitness tracker calculator. Turns sensor packages (SWM, RUN, WLK) into distance, mean speed and calorie summaries. Stateless: nothing is stored between calls."),
	)

	h := &handlers{log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolSummarizeWorkout, Handler: h.summarizeWorkout},
		server.ServerTool{Tool: toolWorkoutMetrics, Handler: h.workoutMetrics},
		server.ServerTool{Tool: toolSummarizeBatch, Handler: h.summarizeBatch},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resWorkoutTypes, Handler: h.workoutTypes},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	log *slog.Logger
}

// --- Resource definitions ---

var resWorkoutTypes = mcp.NewResource(
	"ftracker://workout_types",
	"Workout Types",
	mcp.WithResourceDescription("Supported workout type codes with the ordered sensor readings each one expects"),
	mcp.WithMIMEType("application/json"),
)
