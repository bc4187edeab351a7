package planet

import "weathering-atlas/internal/mathx"

// The planet decision chain: an ordered list of (re-mix, modulo test,
// outcome) steps. Each step mixes the running hash once and then tests
// it; the first accepting or rejecting step wins, so the steps are not
// independent draws. Order and moduli are copied from the reference
// generator and must not be reordered.

type stepAction int

const (
	actContinue stepAction = iota
	actReject
	actAccept
)

type stepResult struct {
	action stepAction
	typ    PlanetType
}

var (
	next   = stepResult{action: actContinue}
	reject = stepResult{action: actReject}
)

func accept(t PlanetType) stepResult {
	return stepResult{action: actAccept, typ: t}
}

type chainStep struct {
	modulus   uint32
	onZero    stepResult
	onNonZero stepResult
}

var decisionChain = []chainStep{
	{50, next, reject}, // existence gate
	{2, next, reject},  // second existence gate
	{40, accept(Gaia), next},
	{40, accept(SuperDimensional), next},
	{10, reject, next},
	{9, reject, next},
	{3, accept(Continental), next},
	{2, accept(Molten), next},
	{4, accept(Barren), next},
	{3, accept(Arid), next},
	{2, accept(Frozen), accept(Ocean)}, // terminal two-way split
}

// runChain walks the chain starting from h0. Callers seed it with
// Mix(tileHash): the first step's own mix then makes the mod-50 gate see
// the second mix of the tile hash, as the reference does.
func runChain(h0 uint32) (PlanetType, bool) {
	h := h0
	for _, step := range decisionChain {
		h = mathx.Mix(h)
		r := step.onNonZero
		if h%step.modulus == 0 {
			r = step.onZero
		}
		switch r.action {
		case actReject:
			return 0, false
		case actAccept:
			return r.typ, true
		}
	}
	// The terminal step always accepts.
	return 0, false
}
