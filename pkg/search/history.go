package search

// History is the canonical, deduplicating owner of every distinct state
// a session has generated. A state is stored at most once; all later
// equal states resolve to the stored instance. Without it the engine
// would degenerate into a tree search over a graph, re-expanding
// previously seen states arbitrarily many times.
type History[S State[S, M], M any] struct {
	states map[string]S
}

// NewHistory creates an empty store.
func NewHistory[S State[S, M], M any]() *History[S, M] {
	return &History[S, M]{states: make(map[string]S)}
}

// Insert adds state to the store and returns the canonical instance.
// When an equal state is already present, the stored instance is
// returned and novel is false.
func (h *History[S, M]) Insert(state S) (canonical S, novel bool) {
	key := state.Key()
	if existing, ok := h.states[key]; ok {
		return existing, false
	}
	h.states[key] = state
	return state, true
}

// Contains reports whether an equal state has been inserted.
func (h *History[S, M]) Contains(state S) bool {
	_, ok := h.states[state.Key()]
	return ok
}

// Len returns the number of distinct states stored.
func (h *History[S, M]) Len() int { return len(h.states) }

// Reset drops all stored states and reseeds the store with the given
// ones. BestMove uses this to keep the root visited while isolating each
// branch's bookkeeping.
func (h *History[S, M]) Reset(states ...S) {
	h.states = make(map[string]S, len(states))
	for _, s := range states {
		h.states[s.Key()] = s
	}
}
