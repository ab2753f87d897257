package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/erraggy/urlpatterns/builder"
	"github.com/erraggy/urlpatterns/exporter"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true)

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	patternStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117"))

	wildcardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	arrowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statusRunning = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	statusPaused = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func (m model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	status := statusRunning.Render("RUNNING")
	if !m.running {
		status = statusPaused.Render("PAUSED")
	}
	elapsed := time.Since(m.startTime).Round(time.Second)
	titleBar := fmt.Sprintf("%s  %s  %s  %s",
		titleStyle.Render("URL Pattern Analyzer Demo"),
		status,
		labelStyle.Render("Uptime:")+valueStyle.Render(elapsed.String()),
		helpStyle.Render("[q]uit [space]pause [r]eset"))

	leftBox := boxStyle.Width(34).Height(8).Render(m.renderStats())
	rightBox := boxStyle.Width(62).Height(8).Render(m.renderTopPatterns())
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, leftBox, " ", rightBox)

	bottomBox := boxStyle.Width(98).Render(m.renderRecentPairs())

	return titleBar + "\n" + topRow + "\n" + bottomBox + "\n"
}

func (m model) renderStats() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Statistics"))
	sb.WriteString("\n\n")

	if m.result == nil {
		sb.WriteString(labelStyle.Render("(analyzing...)"))
		return sb.String()
	}

	rows := [][2]string{
		{"Requests:", formatNumber(m.totalURLs)},
		{"Rate:", fmt.Sprintf("%.0f/s", m.urlsPerSec)},
		{"Analyzed:", formatNumber(m.result.Analysis.TotalURIs)},
		{"Parents:", formatNumber(m.result.Data.Len())},
		{"Unique:", formatNumber(m.result.Analysis.UniquePatterns)},
		{"Compression:", fmt.Sprintf("%.1f%%", m.result.Analysis.PatternCompression)},
	}
	for _, row := range rows {
		sb.WriteString(labelStyle.Width(13).Render(row[0]))
		sb.WriteString(valueStyle.Render(row[1]))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m model) renderTopPatterns() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Top Patterns by Coverage"))
	sb.WriteString("\n\n")

	if m.result == nil {
		sb.WriteString(labelStyle.Render("(analyzing...)"))
		return sb.String()
	}

	top := exporter.TopPatterns(m.result, 6)
	if len(top) == 0 {
		sb.WriteString(labelStyle.Render("(no patterns yet)"))
		return sb.String()
	}

	for _, stat := range top {
		count := valueStyle.Render(fmt.Sprintf("%7s", formatNumber(stat.Count)))
		sb.WriteString(fmt.Sprintf("%s  %s\n", count, highlightWildcards(truncate(stat.URI, 48))))
	}

	return sb.String()
}

func (m model) renderRecentPairs() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Recent Requests"))
	sb.WriteString("\n\n")

	if len(m.recentPairs) == 0 {
		sb.WriteString(labelStyle.Render("(waiting for traffic...)"))
		return sb.String()
	}

	arrow := arrowStyle.Render(" -> ")

	for i, pair := range m.recentPairs {
		if i >= 8 {
			break
		}
		original := urlStyle.Render(truncate(pair.original, 44))
		sb.WriteString(fmt.Sprintf("%-46s%s%s\n", original, arrow, highlightWildcards(truncate(pair.pattern, 44))))
	}

	return sb.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// highlightWildcards renders the wildcard token in a contrasting style
// so volatile positions stand out against the literal pattern text.
func highlightWildcards(pattern string) string {
	parts := strings.Split(pattern, builder.Wildcard)
	for i, part := range parts {
		parts[i] = patternStyle.Render(part)
	}
	return strings.Join(parts, wildcardStyle.Render(builder.Wildcard))
}
