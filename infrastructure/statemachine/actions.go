package statemachine

import (
	"github.com/felixgeelhaar/statekit"

	"github.com/laokip/advisor/infrastructure/logging"
)

// logPhaseEntry logs phase entry for a call.
// In statekit, actions receive a pointer to the context. Since our
// context is *CallContext, actions receive **CallContext.
func logPhaseEntry(ctx **CallContext, event statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}

	c := *ctx
	logging.Debug().
		Add(logging.RequestID(c.RequestID)).
		Add(logging.Domain(c.Domain)).
		Add(logging.CacheKey(c.Key)).
		Add(logging.Phase(string(event.Type))).
		Msg("call transition")
}
