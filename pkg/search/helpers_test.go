package search

import "fmt"

// gridState walks a w×h grid toward the far corner with unit-cost moves
// in four directions. Identity is the cell, not the path taken to it.
type gridState struct {
	x, y, w, h int
	move       string
}

func newGrid(w, h int) gridState { return gridState{w: w, h: h} }

func (s gridState) Successors() []gridState {
	dirs := []struct {
		dx, dy int
		name   string
	}{
		{1, 0, "right"},
		{0, 1, "down"},
		{-1, 0, "left"},
		{0, -1, "up"},
	}
	var succs []gridState
	for _, d := range dirs {
		nx, ny := s.x+d.dx, s.y+d.dy
		if nx < 0 || ny < 0 || nx >= s.w || ny >= s.h {
			continue
		}
		succs = append(succs, gridState{x: nx, y: ny, w: s.w, h: s.h, move: d.name})
	}
	return succs
}

func (s gridState) IsGoal() bool { return s.x == s.w-1 && s.y == s.h-1 }

func (s gridState) LastMove() string { return s.move }

func (s gridState) Key() string { return fmt.Sprintf("%d,%d", s.x, s.y) }

func manhattan(s gridState) int { return (s.w - 1 - s.x) + (s.h - 1 - s.y) }

// testGraph is a fixed directed graph with shared instrumentation that
// counts successor enumerations per node.
type testGraph struct {
	edges        map[string][]string
	goal         string
	enumerations map[string]int
}

func newTestGraph(edges map[string][]string, goal string) *testGraph {
	return &testGraph{edges: edges, goal: goal, enumerations: make(map[string]int)}
}

func (g *testGraph) state(id string) graphState { return graphState{id: id, graph: g} }

// graphState is one node of a testGraph. Its move is its own id.
type graphState struct {
	id    string
	graph *testGraph
}

func (s graphState) Successors() []graphState {
	s.graph.enumerations[s.id]++
	var succs []graphState
	for _, next := range s.graph.edges[s.id] {
		succs = append(succs, s.graph.state(next))
	}
	return succs
}

func (s graphState) IsGoal() bool { return s.id == s.graph.goal }

func (s graphState) LastMove() string { return s.id }

func (s graphState) Key() string { return s.id }

func zeroHeuristic(graphState) int { return 0 }
