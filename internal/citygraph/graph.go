// Package citygraph holds an adjacency-list graph of cities connected by
// symmetric, weighted edges. Graphs are built once (at startup or per
// request) and read afterwards; they carry no locking of their own.
package citygraph

import (
	"fmt"
	"math"
	"strings"

	"bookingmx/internal/domain"
)

// Neighbor is one adjacency entry: a directly connected city and the distance
// to it.
type Neighbor struct {
	City     string
	Distance float64
}

type Graph struct {
	adjacency map[string][]Neighbor
}

// New returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{adjacency: make(map[string][]Neighbor)}
}

// AddCity registers a city vertex. Adding a city that already exists is a
// no-op; its adjacency list is preserved.
func (g *Graph) AddCity(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: city name cannot be blank", domain.ErrInvalidInput)
	}
	if _, ok := g.adjacency[name]; ok {
		return nil
	}
	g.adjacency[name] = nil
	return nil
}

// AddEdge connects two existing cities with a symmetric edge: each endpoint
// gains the other as a neighbor at the given distance. Duplicate edges are
// allowed and simply accumulate.
func (g *Graph) AddEdge(from, to string, distance float64) error {
	if _, ok := g.adjacency[from]; !ok {
		return fmt.Errorf("%w: unknown city %q", domain.ErrInvalidInput, from)
	}
	if _, ok := g.adjacency[to]; !ok {
		return fmt.Errorf("%w: unknown city %q", domain.ErrInvalidInput, to)
	}
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		return fmt.Errorf("%w: invalid distance %v", domain.ErrInvalidInput, distance)
	}
	g.adjacency[from] = append(g.adjacency[from], Neighbor{City: to, Distance: distance})
	g.adjacency[to] = append(g.adjacency[to], Neighbor{City: from, Distance: distance})
	return nil
}

// HasCity reports whether name is a vertex of the graph.
func (g *Graph) HasCity(name string) bool {
	_, ok := g.adjacency[name]
	return ok
}

// Neighbors returns a copy of the adjacency list for city, in insertion
// order. Mutating the returned slice does not affect the graph.
func (g *Graph) Neighbors(city string) ([]Neighbor, error) {
	list, ok := g.adjacency[city]
	if !ok {
		return nil, fmt.Errorf("%w: unknown city %q", domain.ErrInvalidInput, city)
	}
	out := make([]Neighbor, len(list))
	copy(out, list)
	return out, nil
}
