package citygraph

import (
	"errors"
	"math"
	"testing"

	"bookingmx/internal/domain"
)

func TestAddCity(t *testing.T) {
	g := New()

	if err := g.AddCity("Puebla"); err != nil {
		t.Fatalf("AddCity: %v", err)
	}
	if !g.HasCity("Puebla") {
		t.Fatalf("expected Puebla in graph")
	}

	// idempotent: re-adding must not error or disturb adjacency
	if err := g.AddCity("Toluca"); err != nil {
		t.Fatalf("AddCity: %v", err)
	}
	if err := g.AddEdge("Puebla", "Toluca", 150); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddCity("Puebla"); err != nil {
		t.Fatalf("re-AddCity: %v", err)
	}
	ns, err := g.Neighbors("Puebla")
	if err != nil {
		t.Fatalf("Neighbors: %v", err)
	}
	if len(ns) != 1 || ns[0].City != "Toluca" {
		t.Fatalf("adjacency lost after re-add: %+v", ns)
	}
}

func TestAddCity_BlankName(t *testing.T) {
	g := New()
	for _, name := range []string{"", "   "} {
		if err := g.AddCity(name); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("AddCity(%q): want ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestAddEdge_Symmetry(t *testing.T) {
	g := New()
	mustAddCity(t, g, "Monterrey")
	mustAddCity(t, g, "Saltillo")

	if err := g.AddEdge("Monterrey", "Saltillo", 10); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	from, err := g.Neighbors("Monterrey")
	if err != nil {
		t.Fatalf("Neighbors: %v", err)
	}
	to, err := g.Neighbors("Saltillo")
	if err != nil {
		t.Fatalf("Neighbors: %v", err)
	}
	if len(from) != 1 || from[0].City != "Saltillo" || from[0].Distance != 10 {
		t.Fatalf("Monterrey adjacency: %+v", from)
	}
	if len(to) != 1 || to[0].City != "Monterrey" || to[0].Distance != 10 {
		t.Fatalf("Saltillo adjacency: %+v", to)
	}
}

func TestAddEdge_UnknownCity(t *testing.T) {
	g := New()
	mustAddCity(t, g, "A")

	if err := g.AddEdge("A", "B", 1); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("missing to-endpoint: want ErrInvalidInput, got %v", err)
	}
	if err := g.AddEdge("B", "A", 1); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("missing from-endpoint: want ErrInvalidInput, got %v", err)
	}
}

func TestAddEdge_InvalidDistance(t *testing.T) {
	g := New()
	mustAddCity(t, g, "A")
	mustAddCity(t, g, "B")

	for _, d := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if err := g.AddEdge("A", "B", d); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("AddEdge distance %v: want ErrInvalidInput, got %v", d, err)
		}
	}
	// zero is a valid distance
	if err := g.AddEdge("A", "B", 0); err != nil {
		t.Fatalf("AddEdge distance 0: %v", err)
	}
}

func TestAddEdge_DuplicatesAccumulate(t *testing.T) {
	g := New()
	mustAddCity(t, g, "A")
	mustAddCity(t, g, "B")

	if err := g.AddEdge("A", "B", 5); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge("A", "B", 5); err != nil {
		t.Fatalf("duplicate AddEdge: %v", err)
	}
	ns, _ := g.Neighbors("A")
	if len(ns) != 2 {
		t.Fatalf("expected duplicate edges to accumulate, got %+v", ns)
	}
}

func TestNeighbors_UnknownCity(t *testing.T) {
	g := New()
	if _, err := g.Neighbors("Nowhere"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestNeighbors_DefensiveCopy(t *testing.T) {
	g := New()
	mustAddCity(t, g, "A")
	mustAddCity(t, g, "B")
	if err := g.AddEdge("A", "B", 7); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	ns, _ := g.Neighbors("A")
	ns[0] = Neighbor{City: "HACKED", Distance: -1}

	again, _ := g.Neighbors("A")
	if again[0].City != "B" || again[0].Distance != 7 {
		t.Fatalf("internal adjacency mutated through returned slice: %+v", again)
	}
}

func mustAddCity(t *testing.T, g *Graph, name string) {
	t.Helper()
	if err := g.AddCity(name); err != nil {
		t.Fatalf("AddCity(%s): %v", name, err)
	}
}
