package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shiftbridge/swapboard/pkg/core/model"
	"github.com/shiftbridge/swapboard/pkg/core/services"
)

const (
	dateTimeLayout = "2006-01-02 15:04"
	dateLayout     = "2006-01-02"
)

// formModel is the proposal form shown over a board. It is rebuilt from
// scratch (freshly prefilled) every time it opens.
type formModel struct {
	kind       BoardKind
	title      string
	labels     []string
	inputs     []textinput.Model
	focus      int
	errMsg     string
	submitting bool
}

// newShiftOfferForm prefills the counter-offer form with the requester's
// shift window as a starting point
func newShiftOfferForm(req model.ShiftSwapRequest) formModel {
	labels := []string{"Shift start", "Shift end", "Overtime start (optional)", "Overtime end (optional)"}
	values := []string{
		formatIfSet(req.ShiftStart.Time, dateTimeLayout),
		formatIfSet(req.ShiftEnd.Time, dateTimeLayout),
		"",
		"",
	}
	return newForm(ShiftBoard, fmt.Sprintf("Counter-offer for %s", req.Requester.FullName), labels, values)
}

// newDayOffMatchForm prefills the match form with the requested day, since
// a valid match must land on exactly that day
func newDayOffMatchForm(req model.DayOffSwapRequest) formModel {
	labels := []string{"Your day off", "Shift start (optional)", "Shift end (optional)", "Overtime start (optional)", "Overtime end (optional)"}
	values := []string{
		formatIfSet(req.RequestedDayOff.Time, dateLayout),
		"",
		"",
		"",
		"",
	}
	return newForm(DayOffBoard, fmt.Sprintf("Match proposal for %s", req.Requester.FullName), labels, values)
}

func newForm(kind BoardKind, title string, labels, values []string) formModel {
	inputs := make([]textinput.Model, len(labels))
	for i := range labels {
		in := textinput.New()
		in.CharLimit = 32
		in.Width = 24
		in.SetValue(values[i])
		if i == 0 {
			in.Focus()
		}
		inputs[i] = in
	}
	return formModel{
		kind:   kind,
		title:  title,
		labels: labels,
		inputs: inputs,
	}
}

func formatIfSet(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}

// parseFormTime accepts either the board's date-time layout or a bare
// date; empty input parses to the zero time
func parseFormTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{dateTimeLayout, dateLayout, time.RFC3339} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse %q, use YYYY-MM-DD or YYYY-MM-DD HH:MM", value)
}

// counterOfferInput converts the shift form fields into a composer input
func (f *formModel) counterOfferInput() (services.CounterOfferInput, error) {
	var input services.CounterOfferInput
	var err error

	if input.ShiftStart, err = parseFormTime(f.inputs[0].Value()); err != nil {
		return input, err
	}
	if input.ShiftEnd, err = parseFormTime(f.inputs[1].Value()); err != nil {
		return input, err
	}
	if input.OvertimeStart, err = parseFormTime(f.inputs[2].Value()); err != nil {
		return input, err
	}
	if input.OvertimeEnd, err = parseFormTime(f.inputs[3].Value()); err != nil {
		return input, err
	}
	return input, nil
}

// matchProposalInput converts the day-off form fields into a composer input
func (f *formModel) matchProposalInput() (services.MatchProposalInput, error) {
	var input services.MatchProposalInput
	var err error

	if input.OriginalDayOff, err = parseFormTime(f.inputs[0].Value()); err != nil {
		return input, err
	}
	if input.ShiftStart, err = parseFormTime(f.inputs[1].Value()); err != nil {
		return input, err
	}
	if input.ShiftEnd, err = parseFormTime(f.inputs[2].Value()); err != nil {
		return input, err
	}
	if input.OvertimeStart, err = parseFormTime(f.inputs[3].Value()); err != nil {
		return input, err
	}
	if input.OvertimeEnd, err = parseFormTime(f.inputs[4].Value()); err != nil {
		return input, err
	}
	return input, nil
}

func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "tab", "down":
		f.focusInput(f.focus + 1)
		return f, nil
	case "shift+tab", "up":
		f.focusInput(f.focus - 1)
		return f, nil
	}

	return f.updateInputs(msg)
}

func (f *formModel) focusInput(idx int) {
	if idx < 0 {
		idx = len(f.inputs) - 1
	}
	if idx >= len(f.inputs) {
		idx = 0
	}
	f.inputs[f.focus].Blur()
	f.focus = idx
	f.inputs[f.focus].Focus()
}

func (f formModel) updateInputs(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f formModel) view(styles Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.CardTitle.Render(f.title))
	sb.WriteString("\n\n")

	for i, label := range f.labels {
		marker := "  "
		if i == f.focus {
			marker = "> "
		}
		sb.WriteString(fmt.Sprintf("%s%-26s %s\n", marker, label+":", f.inputs[i].View()))
	}

	sb.WriteString("\n")
	if f.errMsg != "" {
		sb.WriteString(styles.FormError.Render("✗ " + f.errMsg))
		sb.WriteString("\n")
	}
	if f.submitting {
		sb.WriteString(styles.Muted.Render("Submitting..."))
		sb.WriteString("\n")
	}
	sb.WriteString(styles.Help.Render("enter submit · tab next field · esc cancel"))
	return sb.String()
}
