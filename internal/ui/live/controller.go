package live

import (
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"flightdeck/internal/poll"
)

// Controller runs the live UI and bridges poll updates into it.
type Controller struct {
	events    chan Event
	program   *tea.Program
	done      chan struct{}
	closeOnce sync.Once
}

// Start launches a live UI controller writing to stdout.
func Start(stdout io.Writer, opts ModelOptions) *Controller {
	if stdout == nil {
		stdout = os.Stdout
	}
	events := make(chan Event, 256)
	model := NewModel(events, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	controller := &Controller{
		events:  events,
		program: program,
		done:    make(chan struct{}),
	}
	go func() {
		_, _ = program.Run()
		close(controller.done)
	}()
	return controller
}

// Pump forwards poll updates into the UI until the channel closes, then
// closes the UI event stream.
func (c *Controller) Pump(updates <-chan poll.Update) {
	for update := range updates {
		if event, ok := FromPollUpdate(update); ok {
			c.send(event)
		}
	}
	c.Close()
}

// Close signals the UI to stop.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.closeOnce.Do(func() {
		close(c.events)
	})
}

// Wait blocks until the UI has exited.
func (c *Controller) Wait() {
	if c == nil {
		return
	}
	<-c.done
}

// send delivers an event without blocking a stuck UI.
func (c *Controller) send(event Event) {
	select {
	case c.events <- event:
	case <-c.done:
	}
}
