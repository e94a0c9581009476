/*
Package search implements cost-plus-heuristic best-first search over a
discrete state space.

The engine is domain-agnostic: any type satisfying the State contract can
be searched. A session owns two structures. The History store is the
canonical, deduplicating owner of every distinct state generated so far;
nodes reference instances stored there rather than holding independent
copies, which bounds memory to one instance per distinct state and stops
the search from re-expanding positions it has already seen. The Frontier
orders discovered-but-unexpanded nodes by total estimated cost (path cost
plus heuristic) and always yields the cheapest node next.

# Key Operations

  - Step: pop the best frontier node and expand its novel successors.
  - Solve: step to a goal, or the best reachable node under the depth
    limit and node budget.
  - BestMove: evaluate each legal move from the root by an isolated
    sub-search and commit to the one with the best achievable outcome.

The engine is single-threaded; Step is the unit of work a caller may
interleave with its own logic between calls.
*/
package search
