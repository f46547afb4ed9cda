package view

import (
	"context"
	"sync"

	"portfolio.dev/internal/models"
)

// Loader produces the normalized record for an id.
type Loader interface {
	Load(ctx context.Context, id string) (models.Project, error)
}

// Scroller moves the viewport back to the top.
type Scroller interface {
	ScrollTop()
}

// ScrollFunc adapts a function to Scroller.
type ScrollFunc func()

// ScrollTop calls f.
func (f ScrollFunc) ScrollTop() { f() }

// Controller runs the loader once per distinct id and owns the Machine for the
// current id.
type Controller struct {
	loader   Loader
	scroller Scroller

	mu        sync.Mutex
	machine   *Machine
	current   string
	navigated bool
	observers []Observer
	unsubs    []func()
}

// NewController creates a Controller. scroller may be nil.
func NewController(loader Loader, scroller Scroller) *Controller {
	return &Controller{loader: loader, scroller: scroller}
}

// Subscribe attaches o to the current machine and to every machine created by
// later navigations.
func (c *Controller) Subscribe(o Observer) {
	c.mu.Lock()
	c.observers = append(c.observers, o)
	machine := c.machine
	c.mu.Unlock()

	if machine != nil {
		unsub := machine.Subscribe(o)
		c.mu.Lock()
		c.unsubs = append(c.unsubs, unsub)
		c.mu.Unlock()
	}
}

// Machine returns the machine for the current id, or nil before the first
// Navigate.
func (c *Controller) Machine() *Machine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.machine
}

// Navigate shows id. When id equals the current id nothing happens. Otherwise a
// fresh Unloaded machine replaces the old one, the viewport scrolls to the top
// and the record is loaded synchronously. A load error leaves the machine
// Unloaded and is returned as is.
func (c *Controller) Navigate(ctx context.Context, id string) error {
	c.mu.Lock()
	if c.navigated && c.current == id {
		c.mu.Unlock()
		return nil
	}
	for _, unsub := range c.unsubs {
		unsub()
	}
	c.unsubs = nil
	machine := NewMachine(id)
	c.machine = machine
	c.current = id
	c.navigated = true
	observers := append([]Observer(nil), c.observers...)
	c.mu.Unlock()

	unsubs := make([]func(), 0, len(observers))
	for _, o := range observers {
		unsubs = append(unsubs, machine.Subscribe(o))
	}
	c.mu.Lock()
	c.unsubs = unsubs
	c.mu.Unlock()

	if c.scroller != nil {
		c.scroller.ScrollTop()
	}

	project, err := c.loader.Load(ctx, id)
	if err != nil {
		return err
	}
	machine.Commit(project)
	return nil
}
