package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"ticklist/models"
)

// RenderTaskList writes the filtered task list with a stats summary line.
func RenderTaskList(w io.Writer, tasks []models.Task, filter models.Filter, stats models.Stats) {
	width := TermWidth(80)

	header := fmt.Sprintf("%s tasks", ToTitle(string(filter)))
	fmt.Fprintln(w, StyleHeader.Render(header))
	fmt.Fprintln(w, StyleSubtle.Render(strings.Repeat("─", min(width, 50))))

	for _, t := range tasks {
		fmt.Fprintln(w, renderTaskLine(t, width))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, RenderStats(stats))
}

// RenderStats formats the counts triple as a single summary line.
func RenderStats(stats models.Stats) string {
	return fmt.Sprintf("%d total • %s • %s",
		stats.Total,
		StyleWarning.Render(fmt.Sprintf("%d pending", stats.Pending)),
		StyleSuccess.Render(fmt.Sprintf("%d completed", stats.Completed)),
	)
}

func renderTaskLine(t models.Task, width int) string {
	checkbox := "[ ]"
	text := Truncate(t.Text, width-20)
	if t.Completed {
		checkbox = StyleSuccess.Render("[✓]")
		text = StyleDone.Render(text)
	}
	created := time.UnixMilli(t.CreatedAt).Format("Jan 02")
	return fmt.Sprintf(" %s %s %s %s", checkbox, text, StyleSubtle.Render(created), StyleSubtle.Render(ShortID(t.ID)))
}

// ShortID returns the display form of a task ID.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
