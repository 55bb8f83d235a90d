// Package statemachine provides the statekit statechart for one
// gateway call: idle → check_fresh → calling → write_cache /
// check_stale → done/failed.
package statemachine

import (
	"github.com/felixgeelhaar/statekit"
)

// Phase is one step of a gateway call.
type Phase string

// Call phases. Done and Failed are terminal.
const (
	PhaseIdle       Phase = "idle"
	PhaseCheckFresh Phase = "check_fresh"
	PhaseCalling    Phase = "calling"
	PhaseWriteCache Phase = "write_cache"
	PhaseCheckStale Phase = "check_stale"
	PhaseDone       Phase = "done"
	PhaseFailed     Phase = "failed"
)

// Events driving a call through its phases.
const (
	EventCheck     statekit.EventType = "CHECK"
	EventHit       statekit.EventType = "HIT"
	EventMiss      statekit.EventType = "MISS"
	EventSucceed   statekit.EventType = "SUCCEED"
	EventFail      statekit.EventType = "FAIL"
	EventCommit    statekit.EventType = "COMMIT"
	EventStaleHit  statekit.EventType = "STALE_HIT"
	EventStaleMiss statekit.EventType = "STALE_MISS"
)

// State IDs as StateID type for statekit.
const (
	stateIdle       = statekit.StateID(PhaseIdle)
	stateCheckFresh = statekit.StateID(PhaseCheckFresh)
	stateCalling    = statekit.StateID(PhaseCalling)
	stateWriteCache = statekit.StateID(PhaseWriteCache)
	stateCheckStale = statekit.StateID(PhaseCheckStale)
	stateDone       = statekit.StateID(PhaseDone)
	stateFailed     = statekit.StateID(PhaseFailed)
)

// transitions mirrors the statechart. Used to guard Send, since the
// interpreter panics on events with no matching transition.
var transitions = map[Phase]map[statekit.EventType]Phase{
	PhaseIdle:       {EventCheck: PhaseCheckFresh},
	PhaseCheckFresh: {EventHit: PhaseDone, EventMiss: PhaseCalling},
	PhaseCalling:    {EventSucceed: PhaseWriteCache, EventFail: PhaseCheckStale},
	PhaseWriteCache: {EventCommit: PhaseDone},
	PhaseCheckStale: {EventStaleHit: PhaseDone, EventStaleMiss: PhaseFailed},
}

// CallContext carries call identity through the state machine.
type CallContext struct {
	RequestID string
	Domain    string
	Key       string
}

// NewCallMachine creates the canonical per-call statechart.
func NewCallMachine() (*statekit.MachineConfig[*CallContext], error) {
	return statekit.NewMachine[*CallContext]("advice_call").
		WithInitial(stateIdle).
		WithContext(&CallContext{}).
		WithAction("logEntry", logPhaseEntry).
		State(stateIdle).
			OnEntry("logEntry").
			On(EventCheck).Target(stateCheckFresh).
			Done().
		State(stateCheckFresh).
			OnEntry("logEntry").
			On(EventHit).Target(stateDone).
			On(EventMiss).Target(stateCalling).
			Done().
		State(stateCalling).
			OnEntry("logEntry").
			On(EventSucceed).Target(stateWriteCache).
			On(EventFail).Target(stateCheckStale).
			Done().
		State(stateWriteCache).
			OnEntry("logEntry").
			On(EventCommit).Target(stateDone).
			Done().
		State(stateCheckStale).
			OnEntry("logEntry").
			On(EventStaleHit).Target(stateDone).
			On(EventStaleMiss).Target(stateFailed).
			Done().
		State(stateDone).
			Final().
			OnEntry("logEntry").
			Done().
		State(stateFailed).
			Final().
			OnEntry("logEntry").
			Done().
		Build()
}
