package cmd

import (
	"context"
	"fmt"
	"os"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"ticklist/models"
	"ticklist/tasklist"
	"ticklist/types"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI tool integration",
	Long: `Start a Model Context Protocol (MCP) server so AI assistants can read
and mutate the task list through the same store as the CLI.

Exposed tools: add-task, list-tasks, toggle-task, delete-task,
clear-completed, task-stats.

The server speaks MCP over stdio and runs until the client disconnects.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMCPServer(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServer(ctx context.Context) error {
	// MCP uses stdio transport. stdout must stay pure JSON-RPC; all status
	// output goes to stderr.
	fmt.Fprintln(os.Stderr, "ticklist MCP server starting...")

	s, err := GetStore()
	if err != nil {
		return fmt.Errorf("failed to initialize task store: %w", err)
	}
	defer func() { _ = s.Close() }()

	impl := &mcpsdk.Implementation{
		Name:    "ticklist-mcp",
		Version: version,
	}
	serverOpts := &mcpsdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.InitializedParams) {
			fmt.Fprintln(os.Stderr, "✓ MCP connection established")
			if isVerbose() {
				fmt.Fprintln(os.Stderr, "[DEBUG] Client initialized")
			}
		},
	}
	server := mcpsdk.NewServer(impl, serverOpts)
	registerTaskTools(server, s)

	if err := server.Run(ctx, mcpsdk.NewStdioTransport()); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

func registerTaskTools(server *mcpsdk.Server, s *tasklist.Store) {
	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "add-task",
		Description: "Add a task to the list. Text is trimmed; blank text is a no-op.",
	}, addTaskHandler(s))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "list-tasks",
		Description: "List tasks newest first, optionally filtered by completion state (all, pending, completed).",
	}, listTasksHandler(s))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "toggle-task",
		Description: "Flip a task between pending and completed by ID.",
	}, toggleTaskHandler(s))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "delete-task",
		Description: "Delete a task by ID.",
	}, deleteTaskHandler(s))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "clear-completed",
		Description: "Delete every completed task, keeping pending tasks in order.",
	}, clearCompletedHandler(s))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "task-stats",
		Description: "Return total, pending and completed task counts.",
	}, statsHandler(s))
}

// mcpTextResult wraps plain text plus typed structured content in a tool result.
func mcpTextResult[T any](text string, structured T) *mcpsdk.CallToolResultFor[T] {
	return &mcpsdk.CallToolResultFor[T]{
		Content:           []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
		StructuredContent: structured,
	}
}

// mcpToolError reports a tool failure in the result so the client model can
// see it and self-correct, per MCP convention.
func mcpToolError[T any](err error) (*mcpsdk.CallToolResultFor[T], error) {
	return &mcpsdk.CallToolResultFor[T]{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "Error: " + err.Error()}},
		IsError: true,
	}, nil
}

func taskToResponse(t models.Task) types.TaskResponse {
	return types.TaskResponse{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
	}
}

func addTaskHandler(s *tasklist.Store) mcpsdk.ToolHandlerFor[types.AddTaskParams, types.TaskResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.AddTaskParams]) (*mcpsdk.CallToolResultFor[types.TaskResponse], error) {
		task, err := s.Add(params.Arguments.Text)
		if err != nil {
			return mcpToolError[types.TaskResponse](err)
		}
		if task == nil {
			return mcpTextResult("Nothing added: task text is empty.", types.TaskResponse{}), nil
		}
		return mcpTextResult(fmt.Sprintf("Added %q with ID %s", task.Text, task.ID), taskToResponse(*task)), nil
	}
}

func listTasksHandler(s *tasklist.Store) mcpsdk.ToolHandlerFor[types.ListTasksParams, types.TaskListResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.ListTasksParams]) (*mcpsdk.CallToolResultFor[types.TaskListResponse], error) {
		filter, err := models.ParseFilter(params.Arguments.Filter)
		if err != nil {
			return mcpToolError[types.TaskListResponse](err)
		}

		tasks := s.View(filter)
		resp := types.TaskListResponse{Tasks: make([]types.TaskResponse, 0, len(tasks)), Count: len(tasks)}
		for _, t := range tasks {
			resp.Tasks = append(resp.Tasks, taskToResponse(t))
		}
		return mcpTextResult(fmt.Sprintf("%d %s task(s)", len(tasks), filter), resp), nil
	}
}

func toggleTaskHandler(s *tasklist.Store) mcpsdk.ToolHandlerFor[types.ToggleTaskParams, types.TaskResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.ToggleTaskParams]) (*mcpsdk.CallToolResultFor[types.TaskResponse], error) {
		task, err := s.Toggle(params.Arguments.ID)
		if err != nil {
			return mcpToolError[types.TaskResponse](err)
		}
		if task == nil {
			return mcpTextResult(fmt.Sprintf("No task matches ID %q; nothing toggled.", params.Arguments.ID), types.TaskResponse{}), nil
		}
		state := "pending"
		if task.Completed {
			state = "completed"
		}
		return mcpTextResult(fmt.Sprintf("Task %q is now %s.", task.Text, state), taskToResponse(*task)), nil
	}
}

func deleteTaskHandler(s *tasklist.Store) mcpsdk.ToolHandlerFor[types.DeleteTaskParams, types.TaskResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.DeleteTaskParams]) (*mcpsdk.CallToolResultFor[types.TaskResponse], error) {
		removed, err := s.Delete(params.Arguments.ID)
		if err != nil {
			return mcpToolError[types.TaskResponse](err)
		}
		if !removed {
			return mcpTextResult(fmt.Sprintf("No task matches ID %q; nothing deleted.", params.Arguments.ID), types.TaskResponse{}), nil
		}
		return mcpTextResult(fmt.Sprintf("Deleted task %s.", params.Arguments.ID), types.TaskResponse{ID: params.Arguments.ID}), nil
	}
}

func clearCompletedHandler(s *tasklist.Store) mcpsdk.ToolHandlerFor[types.ClearCompletedParams, types.ClearCompletedResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.ClearCompletedParams]) (*mcpsdk.CallToolResultFor[types.ClearCompletedResponse], error) {
		removed, err := s.ClearCompleted()
		if err != nil {
			return mcpToolError[types.ClearCompletedResponse](err)
		}
		return mcpTextResult(fmt.Sprintf("Cleared %d completed task(s).", removed), types.ClearCompletedResponse{Removed: removed}), nil
	}
}

func statsHandler(s *tasklist.Store) mcpsdk.ToolHandlerFor[types.StatsParams, types.StatsResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.StatsParams]) (*mcpsdk.CallToolResultFor[types.StatsResponse], error) {
		st := s.Stats()
		return mcpTextResult(
			fmt.Sprintf("%d total, %d pending, %d completed", st.Total, st.Pending, st.Completed),
			types.StatsResponse{Total: st.Total, Pending: st.Pending, Completed: st.Completed},
		), nil
	}
}
