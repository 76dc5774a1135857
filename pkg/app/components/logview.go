package components

import (
	"strings"

	"github.com/rikuta/mangapress/pkg/app/styles"
	"github.com/rikuta/mangapress/pkg/worker"
)

// LogView keeps the ordered event log of a conversion run and renders the
// tail that fits the viewport.
type LogView struct {
	events []worker.Event
	Width  int
	Height int
}

func NewLogView(width, height int) *LogView {
	return &LogView{Width: width, Height: height}
}

func (l *LogView) Append(ev worker.Event) {
	l.events = append(l.events, ev)
}

func (l *LogView) Clear() {
	l.events = nil
}

func (l *LogView) Len() int {
	return len(l.events)
}

// Count returns how many logged events carry the given severity.
func (l *LogView) Count(level worker.Level) int {
	n := 0
	for _, ev := range l.events {
		if ev.Level == level {
			n++
		}
	}
	return n
}

func (l *LogView) View() string {
	if len(l.events) == 0 {
		return styles.MutedStyle.Render("No log output yet")
	}

	visible := l.events
	if l.Height > 0 && len(visible) > l.Height {
		visible = visible[len(visible)-l.Height:]
	}

	var b strings.Builder
	for _, ev := range visible {
		line := ev.Message
		// Truncate on runes so CJK messages stay valid UTF-8
		if r := []rune(line); l.Width > 2 && len(r) > l.Width {
			line = string(r[:l.Width-1]) + "…"
		}
		b.WriteString(styles.LevelStyle(ev.Level.String()).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// renderProgressBar draws a filled/unfilled bar for current/total.
func renderProgressBar(current, total, width int) string {
	if total == 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return styles.ProgressBarStyle.Render(bar)
}

// SimpleProgress renders a simple progress bar
func SimpleProgress(current, total, width int) string {
	return renderProgressBar(current, total, width)
}
