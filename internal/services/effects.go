package services

import (
	"time"

	"github.com/xvierd/reel-detox/internal/domain"
)

// effectKind names one of the repeating timers a phase owns.
type effectKind string

const (
	effectSessionTick  effectKind = "session_tick"
	effectReelRotation effectKind = "reel_rotation"
	effectBreakTick    effectKind = "break_tick"
)

// allEffects fixes the order effects are cancelled and armed in.
var allEffects = []effectKind{effectSessionTick, effectReelRotation, effectBreakTick}

// phaseEffects lists the timers that exist while the machine is in each phase.
// Phases not listed own no timers.
var phaseEffects = map[domain.Phase][]effectKind{
	domain.PhaseRunning:   {effectSessionTick, effectReelRotation},
	domain.PhaseBreathing: {effectBreakTick},
}

func (k effectKind) interval() time.Duration {
	if k == effectReelRotation {
		return domain.RotationInterval
	}
	return domain.TickInterval
}

type armedEffect struct {
	gen    uint64
	cancel func()
}

// effectTable tracks the armed timers and their generations. A timer callback
// is current only while its generation is still the armed one for its kind.
type effectTable struct {
	armed   map[effectKind]armedEffect
	lastGen uint64
}

func newEffectTable() *effectTable {
	return &effectTable{armed: make(map[effectKind]armedEffect)}
}

func wants(phase domain.Phase, kind effectKind) bool {
	for _, k := range phaseEffects[phase] {
		if k == kind {
			return true
		}
	}
	return false
}

// reconcile cancels every timer the phase does not own and arms the missing ones.
func (t *effectTable) reconcile(phase domain.Phase, arm func(kind effectKind, gen uint64) func()) (stopped, started []effectKind) {
	for _, kind := range allEffects {
		if a, ok := t.armed[kind]; ok && !wants(phase, kind) {
			a.cancel()
			delete(t.armed, kind)
			stopped = append(stopped, kind)
		}
	}
	for _, kind := range phaseEffects[phase] {
		if _, ok := t.armed[kind]; ok {
			continue
		}
		t.lastGen++
		gen := t.lastGen
		t.armed[kind] = armedEffect{gen: gen, cancel: arm(kind, gen)}
		started = append(started, kind)
	}
	return stopped, started
}

func (t *effectTable) current(kind effectKind, gen uint64) bool {
	a, ok := t.armed[kind]
	return ok && a.gen == gen
}

func (t *effectTable) cancelAll() {
	for _, kind := range allEffects {
		if a, ok := t.armed[kind]; ok {
			a.cancel()
			delete(t.armed, kind)
		}
	}
}

func (t *effectTable) kinds() []effectKind {
	var out []effectKind
	for _, kind := range allEffects {
		if _, ok := t.armed[kind]; ok {
			out = append(out, kind)
		}
	}
	return out
}
