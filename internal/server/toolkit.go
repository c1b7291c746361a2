package server

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrDecorationExists  = errors.New("decoration already exists")
	ErrInvalidDecoration = errors.New("invalid decoration")
)

type toolkitKey struct{}

// Toolkit holds the values plugins decorate the server with.
// Writes happen during registration, reads during request handling.
type Toolkit struct {
	mu          sync.RWMutex
	decorations map[string]any
}

func newToolkit() *Toolkit {
	return &Toolkit{decorations: make(map[string]any)}
}

// Get returns the decoration registered under name. A nil Toolkit has no decorations.
func (t *Toolkit) Get(name string) (any, bool) {
	if t == nil {
		return nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.decorations[name]
	return v, ok
}

func (t *Toolkit) set(name string, value any) error {
	if name == "" || value == nil {
		return fmt.Errorf("%w: name %q", ErrInvalidDecoration, name)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.decorations[name]; ok {
		return fmt.Errorf("%w: %s", ErrDecorationExists, name)
	}
	t.decorations[name] = value

	return nil
}

func withToolkit(ctx context.Context, t *Toolkit) context.Context {
	return context.WithValue(ctx, toolkitKey{}, t)
}

// FromContext returns the toolkit attached to a request context, or nil.
func FromContext(ctx context.Context) *Toolkit {
	t, _ := ctx.Value(toolkitKey{}).(*Toolkit)
	return t
}
