package step

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// ErrUnknownOp indicates the requested op is not registered.
var ErrUnknownOp = errors.New("unknown op")

// Factory builds a Transform from one step's configuration. It validates
// op-specific fields before any file is touched.
type Factory func(cfg Config) (Transform, error)

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register makes an op available to New. Transform packages call it from
// init. Registering the same op twice panics.
func Register(op string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := factories[op]; dup {
		panic(fmt.Sprintf("step: op %q registered twice", op))
	}
	factories[op] = factory
}

// New builds the Transform for cfg.Op.
func New(cfg Config) (Transform, error) {
	factory, ok := lookup(cfg.Op)
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownOp, cfg.Op, Available())
	}
	return factory(cfg)
}

// Available lists the registered ops in sorted order.
func Available() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(factories))
}

// IsRegistered reports whether op has a factory.
func IsRegistered(op string) bool {
	_, ok := lookup(op)
	return ok
}

// Unregister removes an op, letting a later Register reuse its name.
func Unregister(op string) {
	mu.Lock()
	defer mu.Unlock()
	delete(factories, op)
}

func lookup(op string) (Factory, bool) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := factories[op]
	return f, ok
}
