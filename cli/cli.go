// Package cli provides the plain-text surface for Greeter. It prints
// every greeting change as a line, which suits pipes, logs, and
// terminals without a TUI.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/olekukonko/tablewriter"

	"github.com/yllada/greeter/clock"
	"github.com/yllada/greeter/common"
	"github.com/yllada/greeter/greeting"
	"github.com/yllada/greeter/observable"
	"github.com/yllada/greeter/rotator"
)

// CLI writes rotation output to a writer.
type CLI struct {
	out io.Writer
}

// New creates a CLI writing to out.
func New(out io.Writer) *CLI {
	return &CLI{out: out}
}

// PrintTable lists the greeting table in rotation order.
func (c *CLI) PrintTable(table *greeting.Table) error {
	tw := tablewriter.NewWriter(c.out)
	tw.SetHeader([]string{"#", "Language", "Greeting"})
	tw.SetAutoWrapText(false)
	tw.SetAutoFormatHeaders(true)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetCenterSeparator("")
	tw.SetColumnSeparator("")
	tw.SetRowSeparator("")
	tw.SetHeaderLine(false)
	tw.SetBorder(false)
	tw.SetTablePadding("  ")

	for i, e := range table.Entries() {
		tw.Append([]string{strconv.Itoa(i + 1), e.Language, e.Text})
	}
	tw.Render()
	return nil
}

// Run prints one line per tick until the rotator stops or ctx
// is cancelled. Cancellation stops the rotator.
func (c *CLI) Run(ctx context.Context, r *rotator.Rotator) error {
	p := c.follow(r)

	select {
	case <-r.Done():
		p.finish("Done after %d greetings.\n")
		return nil
	case <-ctx.Done():
		r.Stop()
		p.finish("Stopped after %d greetings.\n")
		return ctx.Err()
	}
}

// DryRun prints a whole rotation at once by ticking m until r stops.
// r must have been built on m.
func (c *CLI) DryRun(r *rotator.Rotator, m *clock.Manual) error {
	p := c.follow(r)

	for r.State() == rotator.Running {
		if m.Tick() == 0 {
			p.finish("Stalled after %d greetings.\n")
			return fmt.Errorf("rotation stalled after %d greetings", r.TickCount())
		}
	}
	p.finish("Done after %d greetings.\n")
	return nil
}

// printer serializes the tick lines written from the timer goroutine
// with the summary written by the caller. Ticks arriving after the
// summary are dropped.
type printer struct {
	mu          sync.Mutex
	out         io.Writer
	shown       int
	closed      bool
	unsubscribe observable.Unsubscribe
}

// follow writes the header and subscribes a printer to r.
func (c *CLI) follow(r *rotator.Rotator) *printer {
	opts := r.Options()
	p := &printer{out: c.out}

	// Held until the header is out, so a tick cannot print before it.
	p.mu.Lock()
	defer p.mu.Unlock()

	// Ticks changes last, so both values are already current here.
	p.unsubscribe = r.Ticks().Subscribe(func(n int) {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.closed {
			return
		}
		fmt.Fprintln(p.out, FormatLine(n, opts.MaxCount, r.Language().Get(), r.Greeting().Get()))
		p.shown++
	})

	fmt.Fprintf(p.out, "%s: %d languages, every %v, %d greetings\n",
		common.AppName, r.Table().Len(), opts.Interval, opts.MaxCount)
	return p
}

// finish detaches the printer and writes the summary with the number of
// lines shown.
func (p *printer) finish(format string) {
	p.mu.Lock()
	p.closed = true
	fmt.Fprintf(p.out, format, p.shown)
	p.mu.Unlock()
	p.unsubscribe()
}

// FormatLine renders a single rotation step.
func FormatLine(tick, maxCount int, language, text string) string {
	width := len(fmt.Sprint(maxCount))
	return fmt.Sprintf("[%*d/%d] %-10s %s", width, tick, maxCount, language, text)
}

// PrintHelp prints CLI usage help.
func PrintHelp(w io.Writer) {
	fmt.Fprintln(w, `Greeter - rotating "Hello World" in five languages

Usage:
  greeter [OPTIONS]

Options:
  --frontend NAME   auto, gui, tui or plain (default from config)
  --interval D      Time each greeting is shown, e.g. 2s
  --max-count N     Number of greetings before stopping
  --config PATH     Configuration file (default ~/.config/greeter/config.yaml)
  --list            List the greeting table and exit
  --dry-run         Run the whole rotation instantly and print it
  --verbose         Enable verbose logging
  --version         Show version and exit
  --help            Show this help message

Environment:
  GREETER_INTERVAL, GREETER_MAX_COUNT, GREETER_FRONTEND, GREETER_THEME
                    Override the configuration file; flags win over both

Examples:
  greeter
  greeter --frontend tui --interval 500ms
  greeter --frontend plain --max-count 10
  greeter --list`)
}
