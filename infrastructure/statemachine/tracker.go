package statemachine

import (
	"github.com/felixgeelhaar/statekit"
)

// Tracker drives one call through the statechart. The gateway sends an
// event at every step and the tracker records the resulting phase.
type Tracker struct {
	interp *statekit.Interpreter[*CallContext]
	ctx    *CallContext
}

// NewTracker creates a tracker for one call.
func NewTracker(machine *statekit.MachineConfig[*CallContext], ctx *CallContext) *Tracker {
	interp := statekit.NewInterpreter(machine)
	interp.UpdateContext(func(c **CallContext) {
		*c = ctx
	})
	return &Tracker{
		interp: interp,
		ctx:    ctx,
	}
}

// Start enters the initial phase.
func (t *Tracker) Start() {
	t.interp.Start()
}

// Stop stops the underlying interpreter.
func (t *Tracker) Stop() {
	t.interp.Stop()
}

// Send advances the call with the given event. Events with no matching
// transition from the current phase are dropped.
func (t *Tracker) Send(ev statekit.EventType) {
	if _, ok := transitions[t.Phase()][ev]; !ok {
		return
	}
	t.interp.Send(statekit.Event{Type: ev})
}

// Phase returns the current call phase.
func (t *Tracker) Phase() Phase {
	return Phase(t.interp.State().Value)
}

// Terminal reports whether the call reached done or failed.
func (t *Tracker) Terminal() bool {
	return t.interp.Done()
}
