package effect

import (
	"slices"

	"go.uber.org/zap"

	"dungeon-crawler/internal/entity"
)

// Registry holds the active effects of a session in activation order.
type Registry struct {
	active []*Effect
	log    *zap.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{log: log}
}

// Active returns the live effects in activation order.
func (r *Registry) Active() []*Effect { return slices.Clone(r.active) }

// Len returns the number of live effects.
func (r *Registry) Len() int { return len(r.active) }

// For returns the live effects whose target is c.
func (r *Registry) For(c *entity.Creature) []*Effect {
	var out []*Effect
	for _, e := range r.active {
		if e.Target == c {
			out = append(out, e)
		}
	}
	return out
}

// Activate starts e. An ephemeral effect applies once immediately and counts
// that application against its duration, so duration N means N applications
// in total. A constant effect applies once; activating it again does nothing.
func (r *Registry) Activate(e *Effect, h Host) {
	switch e.Mode {
	case Ephemeral:
		if e.state != Created {
			return
		}
		r.register(e)
		e.apply(h)
		if e.state == Deleted {
			return
		}
		e.Duration--
		if e.Duration <= 0 {
			r.Deactivate(e, h)
		}
	case Constant:
		if e.applied {
			return
		}
		e.applied = true
		r.register(e)
		e.apply(h)
	}
}

func (r *Registry) register(e *Effect) {
	e.state = Active
	if !slices.Contains(r.active, e) {
		r.active = append(r.active, e)
	}
	r.log.Debug("effect activated",
		zap.Stringer("kind", e.Kind),
		zap.String("target", e.Target.Name),
		zap.Int("duration", e.Duration))
}

// Tick advances every live effect by one turn. Effects may remove
// themselves, or others, while the walk is in progress.
func (r *Registry) Tick(h Host) {
	for _, e := range slices.Clone(r.active) {
		if e.state != Active {
			continue
		}
		switch e.Mode {
		case Ephemeral:
			e.apply(h)
			if e.state != Active {
				continue
			}
			e.Duration--
			if e.Duration <= 0 {
				r.Deactivate(e, h)
			}
		case Constant:
			if e.Duration <= 0 {
				continue
			}
			e.Duration--
			if e.Duration == 0 {
				r.Deactivate(e, h)
			}
		}
	}
}

// Deactivate ends e. Constant effects are reverted exactly once.
func (r *Registry) Deactivate(e *Effect, h Host) {
	if e.state != Active {
		return
	}
	e.state = Deleted
	r.active = slices.DeleteFunc(r.active, func(o *Effect) bool { return o == e })
	if e.Mode == Constant && e.applied {
		e.revert(h)
	} else if e.Target.Alive() {
		h.Notify("[" + e.Target.Name + "] " + e.Kind.String() + " effect disappeared")
	}
	r.log.Debug("effect deactivated", zap.Stringer("kind", e.Kind), zap.String("target", e.Target.Name))
}

// Clear deactivates every live effect on c, in activation order.
func (r *Registry) Clear(c *entity.Creature, h Host) {
	for _, e := range r.For(c) {
		r.Deactivate(e, h)
	}
}
