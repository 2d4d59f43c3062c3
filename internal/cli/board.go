package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/AbinashGupta/task-manager/pkg/models"
)

type boardModel struct {
	columns   map[models.TaskStatus][]models.Task
	activeCol int
	selected  map[int]int // per-column cursor position
	width     int
	height    int
	err       error
	statusMsg string
}

// boardLoadedMsg carries reloaded columns back to the model.
type boardLoadedMsg struct {
	columns map[models.TaskStatus][]models.Task
	err     error
}

// taskMovedMsg reports the outcome of a caret move.
type taskMovedMsg struct {
	title  string
	status models.TaskStatus
	err    error
}

var (
	boardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	columnStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activeColumnStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(0, 1)

	columnHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62"))

	tileStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedTileStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62"))

	priorityHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	priorityMed  = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	priorityLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	boardHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newBoardModel() boardModel {
	return boardModel{
		columns:  make(map[models.TaskStatus][]models.Task),
		selected: make(map[int]int),
	}
}

func (m boardModel) Init() tea.Cmd {
	return loadBoard
}

func loadBoard() tea.Msg {
	columns, err := Service.KanbanColumns()
	return boardLoadedMsg{columns: columns, err: err}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.activeCol = (m.activeCol - 1 + len(models.AllStatuses)) % len(models.AllStatuses)
			return m, nil
		case "right", "l":
			m.activeCol = (m.activeCol + 1) % len(models.AllStatuses)
			return m, nil
		case "up", "k":
			if m.selected[m.activeCol] > 0 {
				m.selected[m.activeCol]--
			}
			return m, nil
		case "down", "j":
			col := m.columns[models.AllStatuses[m.activeCol]]
			if m.selected[m.activeCol] < len(col)-1 {
				m.selected[m.activeCol]++
			}
			return m, nil
		case "shift+right", ">":
			return m, m.moveSelected(models.NextCaretStatus)
		case "shift+left", "<":
			return m, m.moveSelected(models.PreviousCaretStatus)
		case "r":
			return m, loadBoard
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case boardLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.columns = msg.columns
		m.err = nil
		for i, st := range models.AllStatuses {
			if m.selected[i] >= len(m.columns[st]) {
				m.selected[i] = max(0, len(m.columns[st])-1)
			}
		}
		return m, nil

	case taskMovedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Error: %s", msg.err)
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Moved %q to %s", msg.title, msg.status)
		return m, loadBoard
	}

	return m, nil
}

// moveSelected moves the selected task one step along the caret sequence
// (todo, in-progress, done). Blocked tasks do not participate.
func (m boardModel) moveSelected(step func(models.TaskStatus) models.TaskStatus) tea.Cmd {
	status := models.AllStatuses[m.activeCol]
	col := m.columns[status]
	if len(col) == 0 {
		return nil
	}
	task := col[m.selected[m.activeCol]]

	target := step(task.Status)
	if target == "" {
		return nil
	}

	return func() tea.Msg {
		moved, err := Service.MoveTask(task.ID, target)
		if err != nil {
			return taskMovedMsg{err: err}
		}
		return taskMovedMsg{title: moved.Title, status: moved.Status}
	}
}

func (m boardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	title := boardTitleStyle.Render(" Task Board ")
	help := boardHelpStyle.Render("←/→: column | ↑/↓: task | </>: move task | r: refresh | q: quit")

	if m.err != nil {
		return fmt.Sprintf("%s\n\n  Error: %s\n\n%s", title, m.err, help)
	}

	colWidth := (m.width-2)/len(models.AllStatuses) - 4
	if colWidth < 16 {
		colWidth = 16
	}

	rendered := make([]string, 0, len(models.AllStatuses))
	for i, st := range models.AllStatuses {
		rendered = append(rendered, m.renderColumn(i, st, colWidth))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	out := fmt.Sprintf("%s\n\n%s\n\n%s", title, body, help)
	if m.statusMsg != "" {
		out += "\n" + boardHelpStyle.Render(m.statusMsg)
	}
	return out
}

func (m boardModel) renderColumn(index int, status models.TaskStatus, width int) string {
	var b strings.Builder
	tasks := m.columns[status]
	b.WriteString(columnHeaderStyle.Render(fmt.Sprintf("%s (%d)", models.ColumnLabels[status], len(tasks))))
	b.WriteString("\n")

	if len(tasks) == 0 {
		b.WriteString(tileStyle.Render("  -"))
	}
	for i, t := range tasks {
		label := fmt.Sprintf("%s %s", priorityMarker(t.Priority), truncate(t.Title, width-6))
		if t.Note != "" {
			label += "\n  " + truncate(t.Note, width-6)
		}
		style := tileStyle
		if index == m.activeCol && i == m.selected[index] {
			style = selectedTileStyle
		}
		b.WriteString(style.Render(label))
		b.WriteString("\n")
	}

	style := columnStyle
	if index == m.activeCol {
		style = activeColumnStyle
	}
	return style.Width(width).Render(b.String())
}

func priorityMarker(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return priorityHigh.Render("●")
	case models.PriorityLow:
		return priorityLow.Render("●")
	default:
		return priorityMed.Render("●")
	}
}

func truncate(s string, width int) string {
	if width < 4 {
		width = 4
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Interactive kanban board",
	Long: `Launch an interactive kanban board showing tasks in four columns:
To Do, In Progress, Blocked, Done.

Move the selected task forward or backward along the todo → in-progress →
done sequence with > and <. Blocked tasks can only be moved via the update
command.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Service == nil {
			return fmt.Errorf("task service not initialized")
		}
		p := tea.NewProgram(newBoardModel(), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
}
