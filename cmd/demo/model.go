package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/erraggy/urlpatterns/builder"
	"github.com/erraggy/urlpatterns/clusterer"
)

const (
	batchSize      = 250
	tickInterval   = 250 * time.Millisecond
	maxHeldURLs    = 25000
	maxRecentPairs = 12
)

type tickMsg time.Time

type recentPair struct {
	original string
	pattern  string
}

type model struct {
	gen    *requestGenerator
	urls   []string
	result *clusterer.Result

	recentPairs []recentPair
	totalURLs   int
	urlsPerSec  float64
	lastTick    time.Time
	startTime   time.Time

	running  bool
	quitting bool
	width    int
	height   int
}

func newModel() model {
	return model{
		gen:       newRequestGenerator(time.Now().UnixNano()),
		startTime: time.Now(),
		lastTick:  time.Now(),
		running:   true,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.EnterAltScreen)
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ":
			m.running = !m.running
			m.lastTick = time.Now()
		case "r":
			m.urls = nil
			m.result = nil
			m.recentPairs = nil
			m.totalURLs = 0
			m.urlsPerSec = 0
			m.startTime = time.Now()
			m.lastTick = time.Now()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if !m.running {
			return m, tickCmd()
		}

		batch := m.gen.GenerateBatch(batchSize)
		m.urls = append(m.urls, batch...)
		if len(m.urls) > maxHeldURLs {
			m.urls = m.urls[len(m.urls)-maxHeldURLs:]
		}
		m.totalURLs += len(batch)

		m.result = clusterer.Analyze(m.urls)

		for _, line := range batch[:min(3, len(batch))] {
			m.addRecentPair(line, builder.ParentPattern(line))
		}

		now := time.Time(msg)
		if elapsed := now.Sub(m.lastTick).Seconds(); elapsed > 0 {
			m.urlsPerSec = float64(len(batch)) / elapsed
		}
		m.lastTick = now

		return m, tickCmd()
	}

	return m, nil
}

func (m *model) addRecentPair(original, pattern string) {
	m.recentPairs = append([]recentPair{{original, pattern}}, m.recentPairs...)
	if len(m.recentPairs) > maxRecentPairs {
		m.recentPairs = m.recentPairs[:maxRecentPairs]
	}
}

func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	if n < 1000000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%.1fM", float64(n)/1000000)
}
