package systems

import (
	"log"

	"github.com/automoto/knockout/assets/animations"
	"github.com/automoto/knockout/components"
	cfg "github.com/automoto/knockout/config"
)

// LogTracer logs every animator event for the given role.
func LogTracer(role components.Role) animations.Tracer {
	return func(ev animations.Event) {
		switch ev.Kind {
		case animations.EventRange:
			log.Printf("[%s] anim range %d-%d", role, ev.Range.First, ev.Range.Last)
		default:
			log.Printf("[%s] anim %s frame=%d loops=%t", role, ev.Kind, ev.Frame, ev.Loops)
		}
	}
}

func traceOutcome(role components.Role, c *components.CombatantData, out Outcome) {
	if !cfg.Debug.Trace {
		return
	}
	if out.Decided && out.Decision != components.DecideIdle {
		log.Printf("[%s] decided %s", role, out.Decision)
	}
	if out.Hit {
		log.Printf("[%s] hit (window=%d total=%d)", role, c.HitsInWindow, c.HitsTotal)
	}
	if out.Died {
		log.Printf("[%s] knocked out", role)
	}
	if out.From != out.To {
		log.Printf("[%s] %s -> %s", role, out.From, out.To)
	}
}
