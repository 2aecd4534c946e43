package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"ticklist/models"
	"ticklist/tasklist"
)

// RunBoard starts the interactive board over the given store. When watchPath
// is non-empty the board watches that file and reloads the list whenever
// another process rewrites it.
func RunBoard(store *tasklist.Store, watchPath string) error {
	m := boardModel{
		store:     store,
		watchPath: watchPath,
		input:     newTaskInput(),
	}

	if watchPath != "" {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create file watcher: %w", err)
		}
		// Watch the directory: saves go through a temp file and rename, which
		// breaks a watch placed on the file itself. The directory may not
		// exist before the first save; run without live reload in that case.
		if err := watcher.Add(filepath.Dir(watchPath)); err != nil {
			_ = watcher.Close()
		} else {
			m.watcher = watcher
			defer func() { _ = watcher.Close() }()
		}
	}

	_, err := tea.NewProgram(m).Run()
	return err
}

func newTaskInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Task text"
	ti.CharLimit = 200
	ti.Width = 40
	return ti
}

type fileChangedMsg struct{}

type watchErrMsg struct{ err error }

// boardModel is the Bubble Tea model for the task board.
type boardModel struct {
	store     *tasklist.Store
	watcher   *fsnotify.Watcher
	watchPath string
	input     textinput.Model
	adding    bool
	cursor    int
	notice    string
}

func (m boardModel) Init() tea.Cmd {
	return m.watchForChanges()
}

// watchForChanges blocks on the watcher and delivers one change event as a
// message. The command is re-armed after each delivery.
func (m boardModel) watchForChanges() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-m.watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) == filepath.Clean(m.watchPath) &&
					ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					return fileChangedMsg{}
				}
			case err, ok := <-m.watcher.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fileChangedMsg:
		if err := m.store.Reload(); err != nil {
			m.notice = "reload failed: " + err.Error()
		} else {
			m.notice = "list reloaded from disk"
		}
		m.clampCursor()
		return m, m.watchForChanges()

	case watchErrMsg:
		m.notice = "watch error: " + msg.err.Error()
		return m, m.watchForChanges()

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m boardModel) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		task, err := m.store.Add(m.input.Value())
		switch {
		case err != nil:
			m.notice = "save failed: " + err.Error()
		case task == nil:
			m.notice = "nothing to add: task text is empty"
		default:
			m.notice = fmt.Sprintf("added %q", task.Text)
			m.cursor = 0
		}
		m.adding = false
		m.input.Reset()
		return m, nil
	case "esc", "ctrl+c":
		m.adding = false
		m.input.Reset()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m boardModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.store.Selected()

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(tasks)-1 {
			m.cursor++
		}
	case " ":
		if m.cursor < len(tasks) {
			if _, err := m.store.Toggle(tasks[m.cursor].ID); err != nil {
				m.notice = "save failed: " + err.Error()
			}
			m.clampCursor()
		}
	case "d":
		if m.cursor < len(tasks) {
			text := tasks[m.cursor].Text
			if _, err := m.store.Delete(tasks[m.cursor].ID); err != nil {
				m.notice = "save failed: " + err.Error()
			} else {
				m.notice = fmt.Sprintf("deleted %q", text)
			}
			m.clampCursor()
		}
	case "c":
		removed, err := m.store.ClearCompleted()
		if err != nil {
			m.notice = "save failed: " + err.Error()
		} else {
			m.notice = fmt.Sprintf("cleared %d completed task(s)", removed)
		}
		m.clampCursor()
	case "f":
		m.store.SetFilter(nextFilter(m.store.Filter()))
		m.cursor = 0
	case "a":
		m.adding = true
		m.input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *boardModel) clampCursor() {
	if n := len(m.store.Selected()); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	} else if n == 0 {
		m.cursor = 0
	}
}

func nextFilter(f models.Filter) models.Filter {
	switch f {
	case models.FilterAll:
		return models.FilterPending
	case models.FilterPending:
		return models.FilterCompleted
	default:
		return models.FilterAll
	}
}

func (m boardModel) View() string {
	var b strings.Builder

	today := time.Now().Format("Monday, January 2 2006")
	b.WriteString(StyleHeader.Render("ticklist") + StyleSubtle.Render(" "+today) + "\n")
	b.WriteString(StyleSubtle.Render(fmt.Sprintf("filter: %s", ToTitle(string(m.store.Filter())))) + "\n\n")

	tasks := m.store.Selected()
	if len(tasks) == 0 {
		b.WriteString(StyleSubtle.Render("  nothing here - press a to add a task") + "\n")
	}
	for i, t := range tasks {
		cursor := "  "
		if i == m.cursor {
			cursor = StyleCursor.Render("▶ ")
		}
		checkbox := "[ ]"
		text := Truncate(t.Text, 60)
		if t.Completed {
			checkbox = StyleSuccess.Render("[✓]")
			text = StyleDone.Render(text)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, checkbox, text))
	}

	b.WriteString("\n" + RenderStats(m.store.Stats()) + "\n")

	if m.adding {
		b.WriteString("\n" + m.input.View() + "\n")
		b.WriteString(StyleHelp.Render("enter save • esc cancel") + "\n")
	} else {
		b.WriteString(StyleHelp.Render("↑/↓ move • space toggle • a add • d delete • c clear done • f filter • q quit") + "\n")
	}

	if m.notice != "" {
		b.WriteString(StyleSubtle.Render(m.notice) + "\n")
	}
	return b.String()
}
