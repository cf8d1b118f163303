package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/vidping/vidping/color"
	"github.com/vidping/vidping/icon"
	"github.com/vidping/vidping/strategy"
	"github.com/vidping/vidping/style"
	"github.com/vidping/vidping/util"
)

var (
	paddingStyle = lipgloss.NewStyle().Padding(1, 2)
	labelStyle   = lipgloss.NewStyle().Width(12).Foreground(color.Blue)
)

func (b *bubble) View() string {
	s := b.sample

	title := "unknown"
	if s.Title != nil {
		title = *s.Title
	}

	duration := "unknown"
	if s.TotalDuration != nil {
		duration = formatMillis(*s.TotalDuration)
	}

	bitrate := "unknown"
	if s.Bitrate != nil {
		bitrate = fmt.Sprintf("%.0f kbps", *s.Bitrate)
	}

	lines := []string{
		style.Title(fmt.Sprintf("%s %s", s.Strategy, b.options.Source)),
		"",
		b.status(),
		"",
		b.field("title", style.Fg(color.Purple)(title)),
		b.field("video", s.Path),
		b.field("state", stateLabel(s.State)),
		b.field("content", contentLabel(s.ContentType)),
		b.field("position", formatMillis(s.CurrentPlayTime)+" / "+duration),
		b.field("bitrate", bitrate),
		b.field("thumbnail", style.Faint(s.ThumbnailPath)),
		b.field("viewing", formatMillis(float64(s.ViewStartTime))),
	}

	return b.renderLines(lines)
}

func (b *bubble) status() string {
	var parts []string

	if b.ready {
		parts = append(parts, style.Fg(color.Green)(icon.Get(icon.Ready)+" ready"))
	} else {
		parts = append(parts, b.spinnerC.View()+" "+icon.Get(icon.Waiting)+" waiting for the first frame")
	}

	if b.frozen {
		parts = append(parts, style.Fg(color.Yellow)("frozen"))
	}

	if b.finished {
		parts = append(parts, style.Faint("source finished"))
	}

	parts = append(parts, style.Faint(fmt.Sprintf("%d samples", b.samples)))
	return strings.Join(parts, "  ")
}

func (b *bubble) field(label, value string) string {
	line := labelStyle.Render(label) + value
	if b.width > 0 {
		line = truncate.StringWithTail(line, uint(util.Max(b.width-4, 16)), "…")
	}
	return line
}

func (b *bubble) renderLines(lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")

	if b.height > h+3 {
		l += strings.Repeat("\n", b.height-h-3)
	}
	l += "\n" + b.helpC.View(b.keymap)

	return paddingStyle.Render(l)
}

func stateLabel(code string) string {
	state := strategy.VideoState(code)
	label := fmt.Sprintf("%s (%s)", state, code)

	switch state {
	case strategy.VideoStatePlayed:
		return style.Fg(color.Green)(label)
	case strategy.VideoStateStopped:
		return style.Fg(color.Yellow)(label)
	case strategy.VideoStateCompleted:
		return style.Fg(color.Cyan)(label)
	default:
		return style.Faint(label)
	}
}

func contentLabel(code string) string {
	ct := strategy.ContentType(code)
	if ct == strategy.ContentTypeAd {
		return style.Fg(color.Orange)(icon.Get(icon.Ad) + " " + ct.String())
	}
	return icon.Get(icon.Content) + " " + ct.String()
}

// formatMillis renders milliseconds as m:ss.
func formatMillis(ms float64) string {
	d := time.Duration(ms) * time.Millisecond
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
