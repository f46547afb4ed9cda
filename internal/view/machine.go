// Package view holds the per-page state of a project detail view.
//
// A Machine has two states, Unloaded and Loaded, and a single one-way
// transition. Renderers subscribe to a Machine and redraw from each Snapshot it
// publishes. A Controller owns the Machine for the current project id and
// replaces it whenever the id changes.
package view

import (
	"sync"

	"portfolio.dev/internal/models"
)

// State of a detail view
type State int

const (
	// Unloaded is the initial state; renderers show a loading indicator.
	Unloaded State = iota
	// Loaded means a normalized record has been committed.
	Loaded
)

func (s State) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case Loaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// Snapshot is what observers receive
type Snapshot struct {
	ID      string
	State   State
	Project *models.Project
}

// Observer is called with every published snapshot.
type Observer func(Snapshot)

// Machine is the view state for one project id.
type Machine struct {
	mu        sync.Mutex
	id        string
	state     State
	project   *models.Project
	observers map[int]Observer
	nextSub   int
}

// NewMachine returns a Machine for id in the Unloaded state.
func NewMachine(id string) *Machine {
	return &Machine{
		id:        id,
		observers: make(map[int]Observer),
	}
}

// Snapshot returns the current state.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Machine) snapshotLocked() Snapshot {
	snap := Snapshot{ID: m.id, State: m.state}
	if m.project != nil {
		p := *m.project
		snap.Project = &p
	}
	return snap
}

// Subscribe registers o, calls it once with the current snapshot and then on
// every transition. The returned func removes the observer.
func (m *Machine) Subscribe(o Observer) (unsubscribe func()) {
	m.mu.Lock()
	key := m.nextSub
	m.nextSub++
	m.observers[key] = o
	snap := m.snapshotLocked()
	m.mu.Unlock()

	o(snap)

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.observers, key)
			m.mu.Unlock()
		})
	}
}

// Commit moves the machine from Unloaded to Loaded with project and notifies
// observers. It reports false, and changes nothing, once the machine is Loaded.
func (m *Machine) Commit(project models.Project) bool {
	m.mu.Lock()
	if m.state == Loaded {
		m.mu.Unlock()
		return false
	}
	m.state = Loaded
	m.project = &project
	snap := m.snapshotLocked()
	observers := make([]Observer, 0, len(m.observers))
	for i := 0; i < m.nextSub; i++ {
		if o, ok := m.observers[i]; ok {
			observers = append(observers, o)
		}
	}
	m.mu.Unlock()

	for _, o := range observers {
		o(snap)
	}
	return true
}
