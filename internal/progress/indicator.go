package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Indicator shows that a request is waiting for its first byte.
type Indicator interface {
	Start(message string)
	Stop()
}

// NewIndicator returns a TerminalIndicator writing to w, or a CIIndicator if
// the CI environment variable is set.
func NewIndicator(w io.Writer) Indicator {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIIndicator{w: w}
	}
	return &TerminalIndicator{w: w, interval: 100 * time.Millisecond}
}

// TerminalIndicator displays a spinner until stopped.
type TerminalIndicator struct {
	w        io.Writer
	interval time.Duration

	mu   sync.Mutex
	bar  *progressbar.ProgressBar
	done chan struct{}
	wg   sync.WaitGroup
}

func (i *TerminalIndicator) Start(message string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.bar != nil {
		i.bar.Describe(message)
		return
	}

	i.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(i.w),
		progressbar.OptionSetDescription(message),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	i.done = make(chan struct{})
	i.wg.Add(1)
	go i.spin(i.bar, i.done)
}

func (i *TerminalIndicator) spin(bar *progressbar.ProgressBar, done <-chan struct{}) {
	defer i.wg.Done()
	t := time.NewTicker(i.interval)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-t.C:
			_ = bar.Add(1)
		}
	}
}

// Stop clears the spinner. It is a no-op when not running.
func (i *TerminalIndicator) Stop() {
	i.mu.Lock()
	bar, done := i.bar, i.done
	i.bar, i.done = nil, nil
	i.mu.Unlock()
	if bar == nil {
		return
	}
	close(done)
	i.wg.Wait()
	_ = bar.Finish()
}

// CIIndicator prints one line per state change, suitable for CI logs.
type CIIndicator struct {
	w   io.Writer
	mu  sync.Mutex
	on  bool
	msg string
}

func (i *CIIndicator) Start(message string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.on, i.msg = true, message
	fmt.Fprintf(i.w, "%s\n", message)
}

func (i *CIIndicator) Stop() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.on {
		i.on = false
		fmt.Fprintf(i.w, "%s done\n", i.msg)
	}
}
