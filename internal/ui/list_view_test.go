package ui

import (
	"bytes"
	"strings"
	"testing"

	"ticklist/models"
)

func TestRenderStatsContainsCounts(t *testing.T) {
	out := RenderStats(models.Stats{Total: 3, Pending: 2, Completed: 1})
	for _, want := range []string{"3 total", "2 pending", "1 completed"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderStats output %q missing %q", out, want)
		}
	}
}

func TestRenderTaskListShowsTasksInOrder(t *testing.T) {
	tasks := []models.Task{
		{ID: "6a1f1c2d-9b3e-4f5a-8c7d-1e2f3a4b5c6d", Text: "Walk the dog", CreatedAt: 1700000002000},
		{ID: "0f9e8d7c-6b5a-4f3e-8d1c-2b3a4c5d6e7f", Text: "Buy milk", Completed: true, CreatedAt: 1700000001000},
	}

	var buf bytes.Buffer
	RenderTaskList(&buf, tasks, models.FilterAll, models.Stats{Total: 2, Pending: 1, Completed: 1})
	out := buf.String()

	dog := strings.Index(out, "Walk the dog")
	milk := strings.Index(out, "Buy milk")
	if dog == -1 || milk == -1 {
		t.Fatalf("Output missing task text:\n%s", out)
	}
	if dog > milk {
		t.Error("Tasks must render in collection order")
	}
	if !strings.Contains(out, "All tasks") {
		t.Errorf("Output missing filter header:\n%s", out)
	}
}
