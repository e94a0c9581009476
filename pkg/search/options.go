package search

import "log/slog"

// Metrics receives counters from the engine. Implementations must be
// cheap: the engine calls them on the hot path of every expansion.
type Metrics interface {
	NodeExpanded()
	DuplicateSuppressed()
	FrontierSize(n int)
	HistorySize(n int)
}

// Option defines a functional option for configuring an Engine.
type Option[S State[S, M], M any] func(*Engine[S, M])

// WithDepthLimit bounds expansion by path cost: nodes at or beyond limit
// are not expanded. The very first expansion of a session is exempt so
// the search always makes initial progress. Solve degrades to returning
// the best node seen instead of failing when no goal fits the limit.
func WithDepthLimit[S State[S, M], M any](limit int) Option[S, M] {
	return func(e *Engine[S, M]) {
		if limit >= 0 {
			e.depthLimit = limit
			e.limited = true
		}
	}
}

// WithNodeBudget caps the number of expansions a single Solve call may
// perform. When the budget runs out, Solve returns the best node seen
// so far. Zero means unlimited.
func WithNodeBudget[S State[S, M], M any](budget int) Option[S, M] {
	return func(e *Engine[S, M]) {
		if budget > 0 {
			e.nodeBudget = budget
		}
	}
}

// WithLogger sets a structured logger for the engine. The default
// discards everything.
func WithLogger[S State[S, M], M any](logger *slog.Logger) Option[S, M] {
	return func(e *Engine[S, M]) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics registers a metrics sink.
func WithMetrics[S State[S, M], M any](m Metrics) Option[S, M] {
	return func(e *Engine[S, M]) {
		e.metrics = m
	}
}

// WithProgress registers a callback invoked with every node the engine
// pops. Callers use it to interleave progress reporting with the search.
func WithProgress[S State[S, M], M any](fn func(*Node[S, M])) Option[S, M] {
	return func(e *Engine[S, M]) {
		e.progress = fn
	}
}
