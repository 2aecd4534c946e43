package types

// MCP tool parameter and response types. Field docs double as the schema
// descriptions shown to connected AI clients.

// AddTaskParams for creating a new task
type AddTaskParams struct {
	Text string `json:"text" mcp:"Task text (required, trimmed; blank input is a no-op)"`
}

// ListTasksParams for listing tasks
type ListTasksParams struct {
	Filter string `json:"filter,omitempty" mcp:"View filter: all, pending or completed (default all)"`
}

// ToggleTaskParams for flipping a task's completion flag
type ToggleTaskParams struct {
	ID string `json:"id" mcp:"Task ID to toggle (required; unknown IDs are a no-op)"`
}

// DeleteTaskParams for deleting a task
type DeleteTaskParams struct {
	ID string `json:"id" mcp:"Task ID to delete (required; unknown IDs are a no-op)"`
}

// ClearCompletedParams for bulk-deleting completed tasks
type ClearCompletedParams struct{}

// StatsParams for retrieving aggregate counts
type StatsParams struct{}

// TaskResponse mirrors the persisted task shape.
type TaskResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt int64  `json:"createdAt"`
}

// TaskListResponse for list operations
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

// StatsResponse for the stats tool
type StatsResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

// ClearCompletedResponse reports how many tasks were removed.
type ClearCompletedResponse struct {
	Removed int `json:"removed"`
}
