package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tend/internal/clock"
	"tend/internal/engine"
	"tend/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	today clock.Date
	snap  *engine.Snapshot

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	today clock.Date
	snap  *engine.Snapshot
	err   error
}

type completedMsg struct {
	res  *engine.CompleteResult
	task *engine.Task
	err  error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.svc.Snapshot(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{today: m.svc.Today(), snap: snap}
	}
}

func (m boardModel) completeItemCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteItem(m.ctx, id)
		return completedMsg{res: res, err: err}
	}
}

func (m boardModel) completeTaskCmd(id string) tea.Cmd {
	return func() tea.Msg {
		t, err := m.svc.CompleteTask(m.ctx, id)
		return completedMsg{task: t, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.today = msg.today
		m.snap = msg.snap
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		switch {
		case msg.res != nil:
			note := fmt.Sprintf("Completed %s — streak %d", msg.res.Item.Name, msg.res.Item.Streak)
			if msg.res.Promoted {
				note = msg.res.Item.Name + " is now a habit!"
			}
			m.lastLog = note
		case msg.task != nil:
			m.lastLog = "Task done: " + msg.task.Name
		default:
			m.lastLog = "Nothing to complete."
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.rows())-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			rows := m.rows()
			if m.selected < 0 || m.selected >= len(rows) {
				return m, nil
			}
			row := rows[m.selected]
			if row.header {
				return m, nil
			}
			if row.isTask {
				m.lastLog = "Completing " + row.name + "…"
				return m, m.completeTaskCmd(row.id)
			}
			if row.doneToday {
				m.lastLog = "Already done today."
				return m, nil
			}
			m.lastLog = "Completing " + row.name + "…"
			return m, m.completeItemCmd(row.id)
		}
	}
	return m, nil
}

type boardRow struct {
	header    bool
	label     string
	id        string
	name      string
	isTask    bool
	doneToday bool
	display   string
}

func (m boardModel) rows() []boardRow {
	if m.snap == nil {
		return nil
	}
	var out []boardRow

	due, other := engine.DueToday(m.snap.Items(), m.today)
	out = append(out, boardRow{header: true, label: "Due today"})
	if len(due) == 0 {
		out = append(out, boardRow{header: true, label: "  (nothing scheduled)"})
	}
	for i := range due {
		out = append(out, m.itemRow(&due[i]))
	}

	if len(m.snap.Tasks) > 0 {
		out = append(out, boardRow{header: true, label: "Tasks"})
		for _, t := range m.snap.Tasks {
			mark := "☐"
			if t.Completed {
				mark = "✅"
			}
			out = append(out, boardRow{
				id:      t.ID,
				name:    t.Name,
				isTask:  true,
				display: fmt.Sprintf("%s %s %s", mark, t.Name, ui.Muted.Render(t.Date.String())),
			})
		}
	}

	if len(other) > 0 {
		out = append(out, boardRow{header: true, label: "Later this week"})
		for i := range other {
			out = append(out, m.itemRow(&other[i]))
		}
	}
	return out
}

func (m boardModel) itemRow(it *engine.Item) boardRow {
	doneToday := it.LastCompleted == m.today
	mark := "☐"
	if doneToday {
		mark = "✅"
	}
	return boardRow{
		id:        it.ID,
		name:      it.Name,
		doneToday: doneToday,
		display: fmt.Sprintf("%s %s %s  %s %s", mark, ui.KindIcon(string(it.Kind)), it.Name,
			ui.StreakBadge(it.Streak, it.FrozenStreaks),
			ui.Muted.Render(it.Trigger.Describe())),
	}
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading || m.snap == nil {
		return "tend — loading…\n"
	}

	var b strings.Builder
	header := fmt.Sprintf("tend | %s", m.today)
	if m.svc.DevMode() {
		header += " (simulated)"
	}
	b.WriteString(ui.Title.Render(header))
	b.WriteString("\n\n")

	rows := m.rows()
	// Keep the cursor off headers.
	sel := m.selected
	if sel >= len(rows) {
		sel = len(rows) - 1
	}
	for i, row := range rows {
		if row.header {
			b.WriteString(ui.H2.Render(row.label))
			b.WriteString("\n")
			continue
		}
		line := "  " + row.display
		if i == sel {
			line = ui.SelectedRow.Render("▸ " + row.display)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.Muted.Render("j/k move · space complete · r refresh · q quit"))
	b.WriteString("\n")
	b.WriteString(ui.Muted.Render(m.lastLog))
	b.WriteString("\n")
	return b.String()
}
