package strategy

import (
	"sync"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vidping/vidping/player"
)

// Descriptor binds a strategy implementation to the predicate selecting its players.
type Descriptor struct {
	Name   string
	Verify func(p player.Player) bool
	New    func(p player.Player) Strategy
}

// AnvatoDescriptor describes the Anvato strategy with options read from the configuration.
var AnvatoDescriptor = Descriptor{
	Name:   AnvatoName,
	Verify: Verify,
	New: func(p player.Player) Strategy {
		return New(p, DefaultOptions())
	},
}

// Registry is an ordered list of strategies. The first one accepting a player wins.
type Registry struct {
	mu          sync.RWMutex
	descriptors []Descriptor
}

// Default is the registry with every built-in strategy.
var Default = NewRegistry(AnvatoDescriptor)

// NewRegistry creates a registry holding the given descriptors, in order.
func NewRegistry(descriptors ...Descriptor) *Registry {
	return &Registry{descriptors: descriptors}
}

// Register appends a descriptor.
func (r *Registry) Register(d Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.descriptors = append(r.descriptors, d)
}

// Match returns the first descriptor whose predicate accepts the player.
func (r *Registry) Match(p player.Player) mo.Option[Descriptor] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := lo.Find(r.descriptors, func(d Descriptor) bool {
		return d.Verify(p)
	})
	if !ok {
		return mo.None[Descriptor]()
	}
	return mo.Some(d)
}

// Attach creates the first matching strategy for the player.
func (r *Registry) Attach(p player.Player) mo.Option[Strategy] {
	d, ok := r.Match(p).Get()
	if !ok {
		return mo.None[Strategy]()
	}
	return mo.Some(d.New(p))
}

// Names lists the registered strategy names in order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Map(r.descriptors, func(d Descriptor, _ int) string {
		return d.Name
	})
}
