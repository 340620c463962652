package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/datepicker/core"
	"github.com/jask/datepicker/core/widgets"
	"github.com/jask/datepicker/internal/calendar"
	"github.com/jask/datepicker/internal/config"
)

// App hosts one picker controller in a terminal program.
type App struct {
	picker *core.Controller
	keys   *core.KeyRegistry
	ui     config.UIConfig

	cursor    int
	jumping   bool
	jump      textinput.Model
	status    string
	statusErr bool
	width     int
	height    int
}

func New(picker *core.Controller, keys *core.KeyRegistry, ui config.UIConfig) *App {
	if keys == nil {
		keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	ti := textinput.New()
	ti.Prompt = "Go to: "
	ti.Placeholder = "2021-03, march, 1999"
	ti.CharLimit = 32

	a := &App{
		picker: picker,
		keys:   keys,
		ui:     ui,
		jump:   ti,
		width:  widgets.PickerWidth + 8,
	}
	a.resetCursor()
	return a
}

func (a *App) Init() tea.Cmd { return nil }

// Selected returns the picked date once the program has ended.
func (a *App) Selected() (calendar.Date, bool) { return a.picker.Selected() }

// ActiveScope is the key scope for the current mode.
func (a *App) ActiveScope() string {
	switch {
	case a.jumping:
		return core.ScopeJump
	case !a.picker.IsOpen():
		return core.ScopeClosed
	}
	return core.ScopePicker
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case tea.KeyMsg:
		return a.handleKey(m)
	case tea.MouseMsg:
		return a, a.handleMouse(m)
	case core.StatusMsg:
		a.status, a.statusErr = m.Text, m.IsErr
	case core.DateSelectedMsg:
		a.status, a.statusErr = fmt.Sprintf("selected %s", formatSelection(m.Date, m.Granularity)), false
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	scope := a.ActiveScope()
	action := a.keys.ActionFor(m, scope)
	if action == core.ActionQuit {
		return a, tea.Quit
	}

	switch scope {
	case core.ScopeJump:
		switch action {
		case core.ActionJumpSubmit:
			return a, a.submitJump()
		case core.ActionClose:
			a.stopJump()
			return a, nil
		}
		var cmd tea.Cmd
		a.jump, cmd = a.jump.Update(m)
		return a, cmd

	case core.ScopeClosed:
		if action == core.ActionToggle {
			a.picker.Open()
			a.resetCursor()
		}
		return a, nil
	}

	switch action {
	case core.ActionToggle, core.ActionClose:
		a.picker.Close()
	case core.ActionCursorLeft:
		a.moveCursor(-1)
	case core.ActionCursorRight:
		a.moveCursor(1)
	case core.ActionCursorUp:
		a.moveCursor(-a.picker.Snapshot().Columns)
	case core.ActionCursorDown:
		a.moveCursor(a.picker.Snapshot().Columns)
	case core.ActionSelect:
		return a, a.clickCell(a.cursor)
	case core.ActionZoomOut:
		return a, a.clickTitle()
	case core.ActionPrevious:
		return a, a.navigate(-1)
	case core.ActionNext:
		return a, a.navigate(1)
	case core.ActionJump:
		a.jumping = true
		a.jump.Reset()
		return a, a.jump.Focus()
	}
	return a, nil
}

func (a *App) handleMouse(m tea.MouseMsg) tea.Cmd {
	if !a.picker.IsOpen() || a.jumping || m.Action != tea.MouseActionPress {
		return nil
	}
	switch m.Button {
	case tea.MouseButtonWheelUp:
		return a.navigate(-1)
	case tea.MouseButtonWheelDown:
		return a.navigate(1)
	case tea.MouseButtonLeft:
		top := lipgloss.Height(a.renderField())
		hit := widgets.PickerHit(a.picker.Snapshot(), m.X, m.Y-top)
		switch {
		case hit.Title:
			return a.clickTitle()
		case hit.Previous:
			return a.navigate(-1)
		case hit.Next:
			return a.navigate(1)
		case hit.Cell >= 0:
			a.cursor = hit.Cell
			return a.clickCell(hit.Cell)
		}
	}
	return nil
}

func (a *App) clickCell(i int) tea.Cmd {
	s := a.picker.Snapshot()
	if i < 0 || i >= len(s.Cells) {
		return nil
	}
	ref := s.Cells[i].Ref
	res := a.picker.HandleCellClick(ref)
	switch res.Action {
	case core.ClickNavigated:
		a.resetCursor()
	case core.ClickRejected:
		log.Printf("rejected %s %s", ref.Granularity, res.Date)
		return core.ErrorCmd(fmt.Errorf("%s is not available", formatSelection(res.Date, ref.Granularity)))
	case core.ClickSelected:
		log.Printf("selected %s", res.Date)
		if a.ui.CloseOnSelect {
			a.picker.Close()
		}
		return core.SelectedCmd(res.Date, ref.Granularity)
	}
	return nil
}

func (a *App) clickTitle() tea.Cmd {
	if res := a.picker.HandleTitleClick(); res.Action == core.ClickNavigated {
		a.resetCursor()
	}
	return nil
}

func (a *App) navigate(delta int) tea.Cmd {
	var moved bool
	if delta < 0 {
		moved = a.picker.Previous()
	} else {
		moved = a.picker.Next()
	}
	if !moved {
		return core.StatusCmd("nothing selectable in that direction")
	}
	a.resetCursor()
	return core.StatusCmd("")
}

func (a *App) submitJump() tea.Cmd {
	text := a.jump.Value()
	target, err := core.ParseJump(text, a.picker.View().Anchor().Year())
	if err != nil {
		return core.ErrorCmd(err)
	}
	a.stopJump()
	a.picker.JumpTo(target.Year, target.Month)
	a.resetCursor()
	log.Printf("jump %q -> %s", text, a.picker.Title())
	return core.StatusCmd("showing " + a.picker.Title())
}

func (a *App) stopJump() {
	a.jumping = false
	a.jump.Blur()
	a.jump.Reset()
}

// moveCursor steps within the grid and stops at its edges.
func (a *App) moveCursor(delta int) {
	n := len(a.picker.Snapshot().Cells)
	if n == 0 {
		return
	}
	next := a.cursor + delta
	if next < 0 || next >= n {
		return
	}
	a.cursor = next
}

// resetCursor puts the cursor on the selected cell, else the first enabled
// cell of the period, else the first cell.
func (a *App) resetCursor() {
	s := a.picker.Snapshot()
	a.cursor = 0
	for i, c := range s.Cells {
		if c.Selected {
			a.cursor = i
			return
		}
	}
	for i, c := range s.Cells {
		if !c.Disabled && !c.Outside {
			a.cursor = i
			return
		}
	}
}

func (a *App) View() string {
	var b strings.Builder
	field := a.renderField()
	b.WriteString(field)
	if a.picker.IsOpen() {
		b.WriteString("\n")
		b.WriteString(widgets.RenderPicker(a.picker.Snapshot(), a.cursor, !a.jumping))
	}
	body := b.String()
	if a.jumping {
		// over the grid, below the picker title
		top := lipgloss.Height(field) + 2
		body = widgets.RenderPopupAt(body, widgets.RenderPrompt(a.jump.View()), 0, top,
			max(a.width, widgets.PickerWidth), max(lipgloss.Height(body), top+3))
	}

	status := widgets.RenderStatusBar(a.status, a.statusErr, a.width)
	footer := widgets.RenderFooter(a.keys.HelpBindings(a.ActiveScope()), a.width)
	if a.height > 2 {
		body = widgets.ClipHeight(body, a.height-2)
		if gap := a.height - 2 - lipgloss.Height(body); gap > 0 {
			body += strings.Repeat("\n", gap)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, status, footer)
}

func (a *App) renderField() string {
	value := ""
	if d, ok := a.picker.Selected(); ok {
		value = formatSelection(d, a.picker.SelectionType())
	}
	return widgets.RenderField("Date", value, a.picker.IsOpen())
}

// formatSelection prints d at the precision it was picked with.
func formatSelection(d calendar.Date, g core.Granularity) string {
	switch g {
	case core.GranularityYearBlock:
		return d.Format("2006")
	case core.GranularityMonth:
		return d.Format("2006-01")
	}
	return d.String()
}
