// Package computer holds the shared side/level setting of the automated player.
package computer

import (
	"context"
	"sync"

	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/pkg/chessdto"
)

type subscriber struct {
	id int
	fn func(chessdto.ComputerConfiguration)
}

// Cell is a process-wide, observable ComputerConfiguration.
type Cell struct {
	mu    sync.RWMutex
	value chessdto.ComputerConfiguration

	subM   sync.RWMutex
	subs   []subscriber
	nextID int
}

func NewCell(initial chessdto.ComputerConfiguration) (*Cell, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	return &Cell{value: initial}, nil
}

func (c *Cell) Value() chessdto.ComputerConfiguration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Color is the side currently played by the computer.
func (c *Cell) Color() chessdto.Color { return c.Value().Color }

// Update stores cfg and notifies subscribers in subscription order.
func (c *Cell) Update(cfg chessdto.ComputerConfiguration) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	c.value = cfg
	c.mu.Unlock()

	c.subM.RLock()
	subs := make([]subscriber, len(c.subs))
	copy(subs, c.subs)
	c.subM.RUnlock()
	for _, s := range subs {
		s.fn(cfg)
	}
	return nil
}

// Subscribe registers fn for future updates. The returned func removes it.
func (c *Cell) Subscribe(fn func(chessdto.ComputerConfiguration)) (cancel func()) {
	c.subM.Lock()
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscriber{id: id, fn: fn})
	c.subM.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.subM.Lock()
			defer c.subM.Unlock()
			for i, s := range c.subs {
				if s.id == id {
					c.subs = append(c.subs[:i], c.subs[i+1:]...)
					break
				}
			}
		})
	}
}

// Watch delivers the current value and every later update on a channel.
// Slow readers only see the latest value. The channel closes when ctx is done.
func (c *Cell) Watch(ctx context.Context) <-chan chessdto.ComputerConfiguration {
	out := make(chan chessdto.ComputerConfiguration, 1)
	latest := make(chan chessdto.ComputerConfiguration, 1)
	push := func(cfg chessdto.ComputerConfiguration) {
		select {
		case <-latest:
		default:
		}
		latest <- cfg
	}

	var pushM sync.Mutex
	cancel := c.Subscribe(func(cfg chessdto.ComputerConfiguration) {
		pushM.Lock()
		push(cfg)
		pushM.Unlock()
	})
	pushM.Lock()
	push(c.Value())
	pushM.Unlock()

	go func() {
		defer close(out)
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case cfg := <-latest:
				select {
				case out <- cfg:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
