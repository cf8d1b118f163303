package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidping/vidping/ping"
	"github.com/vidping/vidping/util"
)

const (
	defaultInterval = 250 * time.Millisecond
	minInterval     = 10 * time.Millisecond
)

// bubble holds the watch view state.
type bubble struct {
	options  *Options
	keymap   *keymap
	spinnerC spinner.Model
	helpC    help.Model

	sample   ping.Ping
	ready    bool
	samples  int
	frozen   bool
	finished bool

	width, height int
}

type refreshMsg time.Time

type finishedMsg struct{}

func newBubble(options *Options) *bubble {
	if options.Interval <= 0 {
		options.Interval = defaultInterval
	}
	options.Interval = util.Clamp(options.Interval, minInterval, time.Minute)

	b := &bubble{
		options: options,
		keymap:  newKeymap(),
		helpC:   help.New(),
	}

	b.spinnerC = spinner.New()
	b.spinnerC.Spinner = spinner.Dot
	b.refresh(time.Now())

	return b
}

func (b *bubble) Init() tea.Cmd {
	return tea.Batch(b.spinnerC.Tick, b.scheduleRefresh(), b.waitFinished())
}

func (b *bubble) scheduleRefresh() tea.Cmd {
	return tea.Tick(b.options.Interval, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

func (b *bubble) waitFinished() tea.Cmd {
	if b.options.Done == nil {
		return nil
	}

	done := b.options.Done
	return func() tea.Msg {
		<-done
		return finishedMsg{}
	}
}

// refresh samples the strategy unless the view is frozen.
func (b *bubble) refresh(at time.Time) {
	if b.frozen {
		return
	}

	b.sample = ping.Collect(b.options.Strategy, at)
	b.ready = b.options.Strategy.IsReady()
	b.samples++
}
