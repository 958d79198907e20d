// Package tui implements the interactive swap board: a filterable list of
// open swap requests with an inline proposal form. All business rules live
// in pkg/core/services; this package only renders state and forwards input.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/shiftbridge/swapboard/pkg/clients/apiclient"
	"github.com/shiftbridge/swapboard/pkg/core/model"
	"github.com/shiftbridge/swapboard/pkg/core/services"
)

// BoardKind selects which swap board the program shows
type BoardKind int

const (
	ShiftBoard BoardKind = iota
	DayOffBoard
)

// API is the slice of the ShiftBridge client the board needs
type API interface {
	services.ShiftBoardClient
	services.DayOffBoardClient
	services.OfferSubmitter
	services.MatchSubmitter
}

type mode int

const (
	modeList mode = iota
	modeForm
)

// Model is the bubbletea model for one swap board
type Model struct {
	kind   BoardKind
	api    API
	logger *zap.Logger
	me     model.Employee
	ctx    context.Context

	styles      Styles
	spin        spinner.Model
	searchInput textinput.Model
	searching   bool

	shiftRequests  []model.ShiftSwapRequest
	shiftVisible   []model.ShiftSwapRequest
	dayOffRequests []model.DayOffSwapRequest
	dayOffVisible  []model.DayOffSwapRequest

	filter services.BoardFilter
	cursor int

	mode          mode
	form          formModel
	formShiftReq  model.ShiftSwapRequest
	formDayOffReq model.DayOffSwapRequest

	loading bool
	banner  string
	toast   string
	width   int
	height  int

	now func() time.Time
}

// NewModel creates a board model. ctx bounds every fetch and submission the
// board issues; cancelling it (e.g. on quit) aborts in-flight requests.
func NewModel(ctx context.Context, kind BoardKind, api API, logger *zap.Logger, me model.Employee) Model {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	search := textinput.New()
	search.Placeholder = "reason or name"
	search.CharLimit = 64
	search.Width = 28

	return Model{
		kind:        kind,
		api:         api,
		logger:      logger,
		me:          me,
		ctx:         ctx,
		styles:      DefaultStyles(),
		spin:        sp,
		searchInput: search,
		filter: services.BoardFilter{
			Availability: services.AvailabilityOpen,
			SortBy:       services.SortNewest,
			DateField:    services.DateFieldRequested,
		},
		loading: true,
		now:     time.Now,
	}
}

// Run starts the board program. The context cancels in-flight work when
// the program exits.
func Run(ctx context.Context, kind BoardKind, api API, logger *zap.Logger, me model.Employee) error {
	program := tea.NewProgram(NewModel(ctx, kind, api, logger, me), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("board exited with error: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadCmd())
}

func (m Model) loadCmd() tea.Cmd {
	ctx, kind, api, logger, me := m.ctx, m.kind, m.api, m.logger, m.me
	return func() tea.Msg {
		if kind == ShiftBoard {
			requests, err := services.LoadShiftBoard(ctx, api, logger, me)
			if err != nil {
				return boardLoadFailedMsg{err: err}
			}
			return shiftBoardLoadedMsg{requests: requests}
		}
		requests, err := services.LoadDayOffBoard(ctx, api, logger, me)
		if err != nil {
			return boardLoadFailedMsg{err: err}
		}
		return dayOffBoardLoadedMsg{requests: requests}
	}
}

func (m Model) submitCmd() tea.Cmd {
	ctx, api, logger, me, now := m.ctx, m.api, m.logger, m.me, m.now()
	form := m.form
	if m.kind == ShiftBoard {
		req := m.formShiftReq
		return func() tea.Msg {
			input, err := form.counterOfferInput()
			if err != nil {
				return submitFailedMsg{err: err}
			}
			if err := services.SubmitCounterOffer(ctx, api, logger, me, req, input, now); err != nil {
				return submitFailedMsg{err: err}
			}
			return submitDoneMsg{}
		}
	}
	req := m.formDayOffReq
	return func() tea.Msg {
		input, err := form.matchProposalInput()
		if err != nil {
			return submitFailedMsg{err: err}
		}
		if err := services.SubmitMatchProposal(ctx, api, logger, me, req, input, now); err != nil {
			return submitFailedMsg{err: err}
		}
		return submitDoneMsg{}
	}
}

// applyFilter recomputes the visible list from the full snapshot. Runs a
// full pass every time, matching the board's reactive recompute semantics.
func (m *Model) applyFilter() {
	if m.kind == ShiftBoard {
		m.shiftVisible = services.FilterShiftRequests(m.shiftRequests, m.filter, m.now())
	} else {
		m.dayOffVisible = services.FilterDayOffRequests(m.dayOffRequests, m.filter, m.now())
	}
	if m.cursor >= m.visibleCount() {
		m.cursor = m.visibleCount() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) visibleCount() int {
	if m.kind == ShiftBoard {
		return len(m.shiftVisible)
	}
	return len(m.dayOffVisible)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.form.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case shiftBoardLoadedMsg:
		m.loading = false
		m.banner = ""
		m.shiftRequests = msg.requests
		m.applyFilter()
		return m, nil

	case dayOffBoardLoadedMsg:
		m.loading = false
		m.banner = ""
		m.dayOffRequests = msg.requests
		m.applyFilter()
		return m, nil

	case boardLoadFailedMsg:
		m.loading = false
		m.banner = friendlyError(msg.err)
		return m, nil

	case submitDoneMsg:
		m.mode = modeList
		m.form = formModel{}
		if m.kind == ShiftBoard {
			m.toast = "Counter-offer sent"
		} else {
			m.toast = "Match proposal sent"
		}
		m.loading = true
		return m, tea.Batch(m.loadCmd(), m.spin.Tick, expireToast())

	case submitFailedMsg:
		m.form.submitting = false
		m.form.errMsg = friendlyError(msg.err)
		return m, nil

	case toastExpiredMsg:
		m.toast = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeForm {
		return m.handleFormKey(msg)
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < m.visibleCount()-1 {
			m.cursor++
		}
		return m, nil

	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "a":
		if m.filter.Availability == services.AvailabilityOpen {
			m.filter.Availability = services.AvailabilityAll
		} else {
			m.filter.Availability = services.AvailabilityOpen
		}
		m.applyFilter()
		return m, nil

	case "s":
		switch m.filter.SortBy {
		case services.SortNewest:
			m.filter.SortBy = services.SortOldest
		case services.SortOldest:
			m.filter.SortBy = services.SortUrgent
		default:
			m.filter.SortBy = services.SortNewest
		}
		m.applyFilter()
		return m, nil

	case "d":
		if m.kind != DayOffBoard {
			return m, nil
		}
		switch m.filter.DateField {
		case services.DateFieldRequested:
			m.filter.DateField = services.DateFieldOriginal
		case services.DateFieldOriginal:
			m.filter.DateField = services.DateFieldEither
		default:
			m.filter.DateField = services.DateFieldRequested
		}
		m.applyFilter()
		return m, nil

	case "r":
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.banner = ""
		return m, tea.Batch(m.loadCmd(), m.spin.Tick)

	case "esc":
		m.banner = ""
		return m, nil

	case "enter":
		return m.openForm()
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.filter.Search = ""
		m.applyFilter()
		return m, nil
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.filter.Search = m.searchInput.Value()
	m.applyFilter()
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.form = formModel{}
		return m, nil
	case "enter":
		m.form.submitting = true
		m.form.errMsg = ""
		return m, tea.Batch(m.submitCmd(), m.spin.Tick)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// openForm opens a freshly prefilled proposal form for the selected
// request, unless the eligibility gates say otherwise
func (m Model) openForm() (tea.Model, tea.Cmd) {
	if m.visibleCount() == 0 {
		return m, nil
	}
	now := m.now()

	if m.kind == ShiftBoard {
		req := m.shiftVisible[m.cursor]
		if services.HasAlreadyOffered(req, m.me) {
			m.toast = "You already have an open offer on this request"
			return m, expireToast()
		}
		if !services.CanOfferOnShift(req, m.me, now) {
			m.toast = "This request is no longer open for offers"
			return m, expireToast()
		}
		m.formShiftReq = req
		m.form = newShiftOfferForm(req)
	} else {
		req := m.dayOffVisible[m.cursor]
		if services.HasAlreadyMatched(req, m.me) {
			m.toast = "You already have an open match proposal on this request"
			return m, expireToast()
		}
		if !services.CanMatchDayOff(req, m.me, now) {
			m.toast = "This request is no longer open for matches"
			return m, expireToast()
		}
		m.formDayOffReq = req
		m.form = newDayOffMatchForm(req)
	}

	m.mode = modeForm
	return m, textinput.Blink
}

// friendlyError maps the error taxonomy to user-facing text
func friendlyError(err error) string {
	if errors.Is(err, apiclient.ErrSessionExpired) {
		return "Session expired - please sign in again"
	}

	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.BestMessage()
	}

	var connErr *apiclient.ConnectivityError
	if errors.As(err, &connErr) {
		return "Request failed due to a network error - please try again"
	}

	return err.Error()
}

func (m Model) View() string {
	var sb strings.Builder

	title := "Shift Swap Board"
	if m.kind == DayOffBoard {
		title = "Day-Off Swap Board"
	}
	sb.WriteString(m.styles.Title.Render(title))
	sb.WriteString(m.styles.Muted.Render("  " + m.me.FullName))
	sb.WriteString("\n\n")

	if m.banner != "" {
		sb.WriteString(m.styles.Banner.Render("⚠ " + m.banner + " (esc to dismiss)"))
		sb.WriteString("\n\n")
	}

	if m.mode == modeForm {
		sb.WriteString(m.form.view(m.styles))
		return sb.String()
	}

	sb.WriteString(m.filterBar())
	sb.WriteString("\n\n")

	if m.loading {
		sb.WriteString(m.spin.View() + " Loading requests...\n")
	} else if m.visibleCount() == 0 {
		sb.WriteString(m.styles.Muted.Render("No requests match the current filters.") + "\n")
	} else {
		m.renderList(&sb)
	}

	if m.toast != "" {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Toast.Render("✓ " + m.toast))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	help := "↑/↓ move · enter propose · / search · a availability · s sort · r refresh · q quit"
	if m.kind == DayOffBoard {
		help = "↑/↓ move · enter propose · / search · a availability · s sort · d date field · r refresh · q quit"
	}
	sb.WriteString(m.styles.Help.Render(help))
	sb.WriteString("\n")

	return sb.String()
}

func (m Model) filterBar() string {
	parts := []string{
		fmt.Sprintf("showing: %s", m.filter.Availability),
		fmt.Sprintf("sort: %s", m.filter.SortBy),
	}
	if m.kind == DayOffBoard {
		parts = append(parts, fmt.Sprintf("dates: %s", m.filter.DateField))
	}
	bar := m.styles.FilterBar.Render(strings.Join(parts, " · "))
	if m.searching {
		bar += "  /" + m.searchInput.View()
	} else if m.filter.Search != "" {
		bar += m.styles.FilterBar.Render(fmt.Sprintf(" · search: %q", m.filter.Search))
	}
	return bar
}

func (m Model) renderList(sb *strings.Builder) {
	now := m.now()
	if m.kind == ShiftBoard {
		for i, req := range m.shiftVisible {
			sb.WriteString(m.renderShiftCard(req, i == m.cursor, now))
			sb.WriteString("\n")
		}
		return
	}
	for i, req := range m.dayOffVisible {
		sb.WriteString(m.renderDayOffCard(req, i == m.cursor, now))
		sb.WriteString("\n")
	}
}

func (m Model) urgencyBadge(relevant time.Time, now time.Time) string {
	switch services.ClassifyUrgency(relevant, now) {
	case services.UrgencyUrgent:
		return m.styles.BadgeUrgent.Render("URGENT")
	case services.UrgencySoon:
		return m.styles.BadgeSoon.Render("SOON")
	default:
		return m.styles.BadgeOpen.Render("OPEN")
	}
}

func (m Model) renderShiftCard(req model.ShiftSwapRequest, selected bool, now time.Time) string {
	var sb strings.Builder
	sb.WriteString(m.styles.CardTitle.Render(req.Requester.FullName))
	sb.WriteString(" ")
	sb.WriteString(m.urgencyBadge(req.ShiftStart.Time, now))
	if services.HasAlreadyOffered(req, m.me) {
		sb.WriteString(" " + m.styles.Claimed.Render("[offer pending]"))
	}
	sb.WriteString("\n")
	sb.WriteString(truncate(req.Reason, 60))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("shift %s → %s · status %s · %d offers",
		req.ShiftStart.Format(dateTimeLayout),
		req.ShiftEnd.Format(dateTimeLayout),
		req.Status,
		len(req.NegotiationHistory))))

	style := m.styles.Card
	if selected {
		style = m.styles.SelectedCard
	}
	return style.Render(sb.String())
}

func (m Model) renderDayOffCard(req model.DayOffSwapRequest, selected bool, now time.Time) string {
	var sb strings.Builder
	sb.WriteString(m.styles.CardTitle.Render(req.Requester.FullName))
	sb.WriteString(" ")
	sb.WriteString(m.urgencyBadge(req.RequestedDayOff.Time, now))
	if req.ReceiverID != nil && *req.ReceiverID != "" {
		sb.WriteString(" " + m.styles.Claimed.Render("[claimed]"))
	}
	if services.HasAlreadyMatched(req, m.me) {
		sb.WriteString(" " + m.styles.Claimed.Render("[match pending]"))
	}
	sb.WriteString("\n")
	sb.WriteString(truncate(req.Reason, 60))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("wants off %s · offers their %s · status %s",
		req.RequestedDayOff.Format(dateLayout),
		req.OriginalDayOff.Format(dateLayout),
		req.Status)))

	style := m.styles.Card
	if selected {
		style = m.styles.SelectedCard
	}
	return style.Render(sb.String())
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
