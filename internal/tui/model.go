package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"gardgear/internal/dto"
	"gardgear/internal/kanban"
	"gardgear/internal/store"
	"gardgear/pkg/status"
)

type mode int

const (
	modeBoard mode = iota
	modeForm
	modeReports
)

// Model is the bubbletea model for the kanban board.
type Model struct {
	store      *store.Store
	controller *kanban.Controller
	logger     *zap.Logger

	mode   mode
	col    int
	row    int
	width  int
	height int

	form     *huh.Form
	formData *requestFormData

	// createErr is the one mutation error that is surfaced to the user;
	// all other mutation failures are only logged.
	createErr string

	quitting bool
}

func NewModel(st *store.Store, logger *zap.Logger) Model {
	return Model{
		store:      st,
		controller: kanban.NewController(st, logger),
		logger:     logger,
	}
}

type loadedMsg struct{}

type mutatedMsg struct{}

type createdMsg struct {
	err error
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		m.store.Load(context.Background())
		return loadedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadedMsg, mutatedMsg:
		m.clampSelection()
		return m, nil

	case createdMsg:
		if msg.err != nil {
			m.createErr = msg.err.Error()
			return m, nil
		}
		m.createErr = ""
		m.mode = modeBoard
		m.clampSelection()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeReports:
			if key.Matches(msg, keys.Back, keys.Reports, keys.Quit) {
				m.mode = modeBoard
			}
			return m, nil
		default:
			return m.updateBoard(msg)
		}
	}

	if m.mode == modeForm && m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Left):
		if m.col > 0 {
			m.col--
			m.clampSelection()
		}
	case key.Matches(msg, keys.Right):
		if m.col < len(status.AllDisplay)-1 {
			m.col++
			m.clampSelection()
		}
	case key.Matches(msg, keys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(msg, keys.Down):
		m.row++
		m.clampSelection()

	case key.Matches(msg, keys.MoveLeft):
		if card, ok := m.selectedCard(); ok && m.col > 0 {
			return m, m.moveCmd(card.ID, status.AllDisplay[m.col-1])
		}
	case key.Matches(msg, keys.MoveRight):
		if card, ok := m.selectedCard(); ok && m.col < len(status.AllDisplay)-1 {
			return m, m.moveCmd(card.ID, status.AllDisplay[m.col+1])
		}

	case key.Matches(msg, keys.StartWork):
		if card, ok := m.selectedCard(); ok {
			return m, m.mutationCmd(func(ctx context.Context) error {
				return m.controller.StartWork(ctx, card.ID)
			})
		}
	case key.Matches(msg, keys.Repaired):
		if card, ok := m.selectedCard(); ok {
			return m, m.mutationCmd(func(ctx context.Context) error {
				return m.controller.Complete(ctx, card.ID, status.DisplayRepaired)
			})
		}
	case key.Matches(msg, keys.Scrap):
		if card, ok := m.selectedCard(); ok {
			return m, m.mutationCmd(func(ctx context.Context) error {
				return m.controller.Complete(ctx, card.ID, status.DisplayScrap)
			})
		}

	case key.Matches(msg, keys.MarkRead):
		if unread := m.store.UnreadNotifications(); len(unread) > 0 {
			id := unread[0].ID
			return m, m.mutationCmd(func(ctx context.Context) error {
				return m.store.MarkNotificationAsRead(ctx, id)
			})
		}

	case key.Matches(msg, keys.New):
		m.formData = &requestFormData{}
		m.form = newRequestForm(m.formData, m.store.Teams(), m.store.Equipment(), m.store.Technicians())
		m.createErr = ""
		m.mode = modeForm
		return m, m.form.Init()

	case key.Matches(msg, keys.Reports):
		m.mode = modeReports
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.Back) {
		m.mode = modeBoard
		m.form = nil
		return m, nil
	}

	updated, cmd := m.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		data := m.formData
		m.form = nil
		return m, func() tea.Msg {
			payload, err := data.toPayload()
			if err != nil {
				return createdMsg{err: err}
			}
			_, err = m.store.CreateRequest(context.Background(), payload)
			return createdMsg{err: err}
		}
	}
	if m.form.State == huh.StateAborted {
		m.mode = modeBoard
		m.form = nil
		return m, nil
	}
	return m, cmd
}

// moveCmd simulates the drag gesture for keyboard moves: record the
// active card, then drop it on the adjacent column.
func (m Model) moveCmd(requestID uint64, targetColumn string) tea.Cmd {
	controller := m.controller
	return func() tea.Msg {
		controller.DragStart(requestID)
		// Errors are logged inside the store, never surfaced here.
		_ = controller.Drop(context.Background(), targetColumn)
		return mutatedMsg{}
	}
}

func (m Model) mutationCmd(fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		_ = fn(context.Background())
		return mutatedMsg{}
	}
}

func (m *Model) clampSelection() {
	columns := m.controller.Columns()
	if m.col >= len(columns) {
		m.col = len(columns) - 1
	}
	n := len(columns[m.col].Cards)
	if n == 0 {
		m.row = 0
	} else if m.row >= n {
		m.row = n - 1
	}
}

func (m Model) selectedCard() (dto.MaintenanceRequestDTO, bool) {
	columns := m.controller.Columns()
	if m.col >= len(columns) {
		return dto.MaintenanceRequestDTO{}, false
	}
	cards := columns[m.col].Cards
	if m.row >= len(cards) {
		return dto.MaintenanceRequestDTO{}, false
	}
	return cards[m.row], true
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeForm:
		view := m.form.View()
		if m.createErr != "" {
			view += "\n" + errorStyle.Render("create failed: "+m.createErr)
		}
		return view
	case modeReports:
		return m.reportsView()
	default:
		return m.boardView()
	}
}

func (m Model) boardView() string {
	columns := m.controller.Columns()
	now := time.Now()

	colWidth := 28
	if m.width > 0 {
		if w := m.width/len(columns) - 4; w > 16 {
			colWidth = w
		}
	}

	rendered := make([]string, 0, len(columns))
	for i, column := range columns {
		var b strings.Builder
		b.WriteString(columnTitleStyle.Render(fmt.Sprintf("%s (%d)", column.Label, len(column.Cards))))
		b.WriteString("\n")

		for j, card := range column.Cards {
			line := fmt.Sprintf("#%d %s", card.ID, card.Subject)
			if store.IsOverdue(card, now) {
				line += " " + overdueMarkStyle.Render("!")
			}
			style := cardStyle
			if i == m.col && j == m.row {
				style = selectedCardStyle
			}
			b.WriteString(style.Width(colWidth).Render(line))
			b.WriteString("\n")
		}

		style := columnStyle
		if i == m.col {
			style = focusedColumnStyle
		}
		rendered = append(rendered, style.Width(colWidth+2).Render(b.String()))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	unread := len(m.store.UnreadNotifications())
	statusLine := fmt.Sprintf("unread notifications: %d", unread)
	if !m.store.Loaded() {
		statusLine += "  (some collections failed to load)"
	}

	help := "←→/hl columns · ↑↓/kj cards · [ ] move · s start · r repaired · x scrap · n new · R reports · tab mark read · q quit"

	return lipgloss.JoinVertical(lipgloss.Left,
		board,
		statusLineStyle.Render(statusLine),
		helpStyle.Render(help),
	)
}

func (m Model) reportsView() string {
	c := m.store.StatusCounts()
	var b strings.Builder
	b.WriteString(reportTitleStyle.Render("Maintenance requests"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "total        %d\n", c.Total)
	fmt.Fprintf(&b, "new          %d\n", c.New)
	fmt.Fprintf(&b, "in progress  %d\n", c.InProgress)
	fmt.Fprintf(&b, "repaired     %d\n", c.Repaired)
	fmt.Fprintf(&b, "scrap        %d\n", c.Scrap)
	fmt.Fprintf(&b, "overdue      %d\n", c.Overdue)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc/R back"))
	return b.String()
}
