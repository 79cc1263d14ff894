package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/seabreak/seabreak/internal/script"
	"github.com/seabreak/seabreak/model"
)

// ErrUnregistered is returned by Cache.Engine when no model has been
// registered for the requested script.
var ErrUnregistered = errors.New("engine: no model registered for script")

// slotCount indexes UNK..Khmer; slot 0 (UNK) is never populated, since UNK
// is not a valid engine key (spec §4.E).
const slotCount = script.Khmer + 1

// Cache lazily constructs and retains one Engine per script for the life of
// the process. The zero value is not usable; use NewCache. A Cache is safe
// for concurrent use: Register is meant to run once during startup before
// any Engine call, and Engine itself only needs to synchronize the very
// first construction of each script's Engine, which it does with
// sync.Once — after that, every read sees the same fully-built, immutable
// Engine with no further locking.
type Cache struct {
	models  [slotCount]*model.Model
	once    [slotCount]sync.Once
	engines [slotCount]*Engine
	errs    [slotCount]error
}

// NewCache returns an empty Cache. Call Register for each script before
// looking engines up.
func NewCache() *Cache {
	return &Cache{}
}

// Register associates m with its script, so that Engine can later build the
// singleton Engine for that script on first use. Register is not safe to
// call concurrently with itself or with Engine; register every model during
// startup, before the cache is used to break any text.
func (c *Cache) Register(m *model.Model) error {
	if m.Script <= script.UNK || m.Script >= slotCount {
		return fmt.Errorf("engine: %w: %v", ErrUnregistered, m.Script)
	}
	c.models[m.Script] = m
	return nil
}

// Engine returns the singleton Engine for s, constructing it on first use.
// It returns ErrUnregistered if no model was registered for s, and returns
// the same construction error on every subsequent call if construction
// failed the first time (the failure itself is cached, matching the
// once-per-process-lifetime semantics of spec §5).
func (c *Cache) Engine(s script.Script) (*Engine, error) {
	if s <= script.UNK || s >= slotCount {
		return nil, fmt.Errorf("engine: %w: %v", ErrUnregistered, s)
	}
	c.once[s].Do(func() {
		m := c.models[s]
		if m == nil {
			c.errs[s] = fmt.Errorf("%w: %v", ErrUnregistered, s)
			return
		}
		c.engines[s], c.errs[s] = New(m)
	})
	return c.engines[s], c.errs[s]
}
