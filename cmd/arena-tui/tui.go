package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))
	acceptedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
	rejectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type (
	tickMsg time.Time
	dataMsg struct {
		view  *compView
		subms []submView
	}
	errMsg error
)

type model struct {
	client  *apiClient
	compID  string
	spinner spinner.Model

	view  *compView
	subms []submView
	err   error
}

func initialModel(client *apiClient, compID string) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return model{
		client:  client,
		compID:  compID,
		spinner: s,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch, tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) fetch() tea.Msg {
	view, err := m.client.getComp(m.compID)
	if err != nil {
		return errMsg(err)
	}
	subms, err := m.client.listSubms(m.compID)
	if err != nil {
		return errMsg(err)
	}
	return dataMsg{view: view, subms: subms}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
	case tickMsg:
		return m, tea.Batch(m.fetch, tick())
	case dataMsg:
		m.view = msg.view
		m.subms = msg.subms
		m.err = nil
		return m, nil
	case errMsg:
		m.err = msg
		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.err != nil {
		return rejectedStyle.Render(fmt.Sprintf("error: %v", m.err)) +
			dimStyle.Render("\npress q to quit\n")
	}
	if m.view == nil {
		return m.spinner.View() + " connecting...\n"
	}

	var b []byte
	b = append(b, titleStyle.Render("LLM Programming Arena")...)
	b = append(b, '\n')

	if m.view.Active {
		b = append(b, fmt.Sprintf("time left: %02d:%02d\n\n",
			m.view.RemainingSec/60, m.view.RemainingSec%60)...)
	} else {
		b = append(b, rejectedStyle.Render("competition finished")...)
		b = append(b, "\n\n"...)
	}

	b = append(b, headerStyle.Render(fmt.Sprintf("%-4s %-30s %-6s %-9s %s",
		"#", "model", "score", "penalty", ""))...)
	b = append(b, '\n')
	for i, row := range m.view.Leaderboard {
		status := ""
		if row.Processing && row.CurrentProblem != nil {
			status = m.spinner.View() + " " + dimStyle.Render(*row.CurrentProblem)
		}
		b = append(b, fmt.Sprintf("%-4d %-30s %-6d %-9s %s\n",
			i+1, row.Model, row.Score,
			formatPenalty(row.PenaltyMs), status)...)
	}

	b = append(b, '\n')
	b = append(b, headerStyle.Render("recent submissions")...)
	b = append(b, '\n')
	max := 10
	if len(m.subms) < max {
		max = len(m.subms)
	}
	for _, subm := range m.subms[:max] {
		line := fmt.Sprintf("%-30s %-16s %s", subm.Model, subm.ProblemID,
			formatStatus(subm.Status, subm.Detail))
		b = append(b, line...)
		b = append(b, '\n')
	}

	b = append(b, dimStyle.Render("\npress q to quit\n")...)
	return string(b)
}

func formatPenalty(ms int64) string {
	return (time.Duration(ms) * time.Millisecond).Truncate(time.Second).String()
}

func formatStatus(status, detail string) string {
	switch status {
	case "ACCEPTED":
		return acceptedStyle.Render(status)
	case "QUEUED", "PROCESSING":
		return dimStyle.Render(status)
	default:
		if detail != "" {
			return rejectedStyle.Render(status + " (" + detail + ")")
		}
		return rejectedStyle.Render(status)
	}
}
