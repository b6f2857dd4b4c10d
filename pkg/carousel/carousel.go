package carousel

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

type State string

const (
	AutoPlaying State = "auto_playing"
	Paused      State = "paused"
)

var ErrIndexOutOfRange = errors.New("carousel index out of range")

// Snapshot is one viewer's spotlight position. Its methods return the next
// snapshot and never touch shared state.
type Snapshot struct {
	Index int   `json:"index"`
	Total int   `json:"total"`
	State State `json:"state"`
}

// Tick advances the index while auto-playing.
func (s Snapshot) Tick() Snapshot {
	if s.State != AutoPlaying || s.Total == 0 {
		return s
	}

	s.Index = (s.Index + 1) % s.Total

	return s
}

// Select jumps to index and stops the rotation, like clicking a dot.
func (s Snapshot) Select(index int) (Snapshot, error) {
	if err := s.check(index); err != nil {
		return s, err
	}

	s.Index = index
	s.State = Paused

	return s, nil
}

// Next and Previous are manual navigation; both pause the rotation.
func (s Snapshot) Next() Snapshot {
	return s.step(1)
}

func (s Snapshot) Previous() Snapshot {
	return s.step(-1)
}

func (s Snapshot) step(delta int) Snapshot {
	s.State = Paused

	if s.Total == 0 {
		return s
	}

	s.Index = (s.Index + delta + s.Total) % s.Total

	return s
}

func (s Snapshot) Pause() Snapshot {
	s.State = Paused

	return s
}

func (s Snapshot) Resume() Snapshot {
	s.State = AutoPlaying

	return s
}

// Validate checks a snapshot a client sent back against the item count.
func (s Snapshot) Validate() error {
	return s.check(s.Index)
}

func (s Snapshot) check(index int) error {
	if index < 0 || index >= s.Total {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, s.Total)
	}

	return nil
}

// Carousel is the schedule driven default every new viewer starts from. Only
// the scheduler moves it; viewers navigate their own Snapshot.
type Carousel struct {
	mu      sync.RWMutex
	current Snapshot
}

func New(total int) *Carousel {
	if total < 0 {
		total = 0
	}

	return &Carousel{current: Snapshot{Total: total, State: AutoPlaying}}
}

// Tick reports whether the index moved.
func (c *Carousel) Tick() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.current.Tick()
	moved := next.Index != c.current.Index
	c.current = next

	return moved
}

// Job adapts Tick to the scheduler's job signature.
func (c *Carousel) Job(context.Context) error {
	c.Tick()

	return nil
}

func (c *Carousel) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.current
}
