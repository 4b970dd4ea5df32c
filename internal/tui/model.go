// Package tui is the interactive shell around the upload/search
// pipeline. It only marshals key events into pipeline calls and render
// output back onto the screen; all behavior lives in the session,
// client and display packages.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/corinnekunze/amazon-purchase-search/internal/display"
	"github.com/corinnekunze/amazon-purchase-search/internal/model"
	"github.com/corinnekunze/amazon-purchase-search/internal/session"
)

// phase tracks which form is on screen.
type phase int

const (
	phaseUpload phase = iota
	phaseSearch
)

// Positions of the search form fields.
const (
	fieldDate = iota
	fieldAmount
	fieldDaysRange
	fieldMaxCombo
	fieldCount
)

var searchTypes = []model.SearchType{
	model.SearchAll,
	model.SearchCombination,
	model.SearchItem,
	model.SearchOrder,
}

// Config wires the shell to the pipeline.
type Config struct {
	Controller    *session.Controller
	Searcher      *session.Searcher
	Renderer      *display.Renderer
	DaysRange     string
	MaxComboItems string
}

// Model is the bubbletea model for the interactive shell.
type Model struct {
	controller *session.Controller
	searcher   *session.Searcher
	renderer   *display.Renderer

	file       textinput.Model
	fields     []textinput.Model
	spin       spinner.Model
	status     string
	errText    string
	results    string
	phase      phase
	focus      int
	searchType int
	busy       bool
	quitting   bool
}

// New builds the initial model, starting in the upload phase.
func New(cfg Config) Model {
	file := textinput.New()
	file.Placeholder = "path/to/amazon-history.csv"
	file.Focus()

	fields := make([]textinput.Model, fieldCount)
	for i := range fields {
		fields[i] = textinput.New()
	}
	fields[fieldDate].Placeholder = "YYYY-MM-DD"
	fields[fieldAmount].Placeholder = "0.00"
	fields[fieldDaysRange].SetValue(cfg.DaysRange)
	fields[fieldMaxCombo].SetValue(cfg.MaxComboItems)

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		controller: cfg.Controller,
		searcher:   cfg.Searcher,
		renderer:   cfg.Renderer,
		file:       file,
		fields:     fields,
		spin:       spin,
		phase:      phaseUpload,
		status:     "Select a purchase-history export to upload",
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case uploadDoneMsg:
		m.busy = false
		m.errText = ""
		m.phase = phaseSearch
		m.focus = fieldDate
		m.status = fmt.Sprintf("Loaded %d items from %d orders",
			msg.summary.TotalItems, msg.summary.TotalOrders)
		if m.fields[fieldDate].Value() == "" {
			m.fields[fieldDate].SetValue(time.Now().Format("2006-01-02"))
		}
		m.blurAll()
		m.fields[fieldDate].Focus()
		return m, nil

	case uploadFailedMsg:
		m.busy = false
		m.errText = msg.err.Error()
		return m, nil

	case searchDoneMsg:
		// Last response to resolve wins; earlier pending searches that
		// finish later will simply overwrite this.
		m.busy = false
		m.errText = ""
		m.results = m.renderer.Render(msg.results)
		return m, nil

	case searchFailedMsg:
		m.busy = false
		m.errText = msg.err.Error()
		return m, nil
	}

	cmd := m.updateInputs(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		switch m.phase {
		case phaseUpload:
			path := m.file.Value()
			if path == "" {
				return m, nil
			}
			m.busy = true
			m.status = "Processing..."
			return m, tea.Batch(m.spin.Tick, m.submitUpload(path))
		case phaseSearch:
			m.busy = true
			return m, tea.Batch(m.spin.Tick, m.runSearch(m.criteria()))
		}

	case "tab", "down":
		if m.phase == phaseSearch {
			m.setFocus((m.focus + 1) % fieldCount)
		}
		return m, nil

	case "shift+tab", "up":
		if m.phase == phaseSearch {
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		}
		return m, nil

	case "ctrl+t":
		if m.phase == phaseSearch {
			m.searchType = (m.searchType + 1) % len(searchTypes)
		}
		return m, nil
	}

	cmd := m.updateInputs(msg)
	return m, cmd
}

// criteria snapshots the form into an immutable value object.
func (m Model) criteria() model.Criteria {
	return model.Criteria{
		Date:          m.fields[fieldDate].Value(),
		Amount:        m.fields[fieldAmount].Value(),
		DaysRange:     m.fields[fieldDaysRange].Value(),
		SearchType:    string(searchTypes[m.searchType]),
		MaxComboItems: m.fields[fieldMaxCombo].Value(),
	}
}

func (m *Model) setFocus(i int) {
	m.focus = i
	m.blurAll()
	m.fields[i].Focus()
}

func (m *Model) blurAll() {
	m.file.Blur()
	for i := range m.fields {
		m.fields[i].Blur()
	}
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if m.phase == phaseUpload {
		m.file, cmd = m.file.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		for i := range m.fields {
			m.fields[i], cmd = m.fields[i].Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return tea.Batch(cmds...)
}
