package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"seqbench/internal/benchmark"
	"seqbench/internal/config"
	apperrors "seqbench/internal/errors"
	"seqbench/internal/session"
)

// Searcher runs one search request and exposes the session history.
type Searcher interface {
	Search(ctx context.Context, target string) (benchmark.Record, error)
	Records() []benchmark.Record
	Output() string
	Iterations() int
}

type searchDoneMsg struct {
	record benchmark.Record
	err    error
}

// SearchModel is the interactive form: brand input, running-time output and
// the chart of every search made in this session.
type SearchModel struct {
	ctx      context.Context
	searcher Searcher

	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    searchKeyMap

	XAxis       string
	chartHeight int
	width       int

	Busy     bool
	Err      error
	Messages []string
	Quitting bool
}

func NewSearchModel(ctx context.Context, searcher Searcher, xAxis string, chartHeight int) SearchModel {
	ti := textinput.New()
	ti.Placeholder = "e.g. Indomie"
	ti.Focus()
	ti.CharLimit = 120
	ti.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	if xAxis != config.XAxisPosition {
		xAxis = config.XAxisIndex
	}

	return SearchModel{
		ctx:         ctx,
		searcher:    searcher,
		input:       ti,
		spinner:     sp,
		help:        help.New(),
		keys:        searchKeys,
		XAxis:       xAxis,
		chartHeight: chartHeight,
		width:       80,
	}
}

func (m SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Axis):
			if m.XAxis == config.XAxisIndex {
				m.XAxis = config.XAxisPosition
			} else {
				m.XAxis = config.XAxisIndex
			}
			return m, nil
		case key.Matches(msg, m.keys.Search):
			if m.Busy {
				return m, nil
			}
			m.Busy = true
			m.Err = nil
			m.Messages = nil
			return m, tea.Batch(m.spinner.Tick, m.searchCmd(m.input.Value()))
		}

	case searchDoneMsg:
		m.Busy = false
		if msg.err != nil {
			m.Err = msg.err
			return m, nil
		}
		m.Messages = session.CompletionMessages(msg.record)
		return m, nil

	case spinner.TickMsg:
		if !m.Busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}

	if m.Busy {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m SearchModel) searchCmd(target string) tea.Cmd {
	ctx, searcher := m.ctx, m.searcher
	return func() tea.Msg {
		rec, err := searcher.Search(ctx, target)
		return searchDoneMsg{record: rec, err: err}
	}
}

func (m SearchModel) View() string {
	if m.Quitting {
		return ""
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("Sequential Search") + "\n\n")

	s.WriteString(labelStyle.Render("Brand Name:") + m.input.View() + "\n")

	output := m.searcher.Output()
	if output == "" {
		output = "-"
	}
	s.WriteString(labelStyle.Render("Running Time:") + outputStyle.Render(output) + "\n")
	s.WriteString(labelStyle.Render("Iterations:") + fmt.Sprintf("%d", m.searcher.Iterations()) + "\n\n")

	switch {
	case m.Busy:
		s.WriteString(m.spinner.View() + " Searching...\n")
	case m.Err != nil:
		s.WriteString(errorStyle.Render(apperrors.Title(m.Err)+": ") + m.Err.Error() + "\n")
	case len(m.Messages) > 0:
		for _, line := range m.Messages {
			s.WriteString(successStyle.Render(line) + "\n")
		}
	default:
		s.WriteString("\n")
	}
	s.WriteString("\n")

	chartWidth := m.width - 20
	chart := ChartFromRecords(m.searcher.Records(), m.XAxis, chartWidth, m.chartHeight)
	s.WriteString(paneStyle.Render(strings.TrimRight(chart.Render(), "\n")) + "\n")

	s.WriteString(m.help.View(m.keys))
	return s.String()
}

// RunSearch starts the interactive search program and blocks until the user
// quits.
func RunSearch(ctx context.Context, searcher Searcher, xAxis string, chartHeight int) error {
	p := tea.NewProgram(NewSearchModel(ctx, searcher, xAxis, chartHeight), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
