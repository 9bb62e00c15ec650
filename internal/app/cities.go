package app

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"bookingmx/internal/citygraph"
	"bookingmx/internal/domain"
)

// DefaultMaxDistance is the nearby-cities threshold, in kilometers, applied
// when a query does not name one.
const DefaultMaxDistance = 250

// ValidateGraphData checks a batch dataset and reports the first violated
// rule. It never returns an error: callers vet datasets speculatively and
// only commit the ones that come back OK.
func ValidateGraphData(data domain.GraphData) domain.Validation {
	if data.Cities == nil || data.Edges == nil {
		return domain.Validation{Reason: "cities and edges must be provided"}
	}
	seen := make(map[string]bool, len(data.Cities))
	for _, name := range data.Cities {
		if seen[name] {
			return domain.Validation{Reason: fmt.Sprintf("duplicate city %q", name)}
		}
		seen[name] = true
	}
	for _, name := range data.Cities {
		if strings.TrimSpace(name) == "" {
			return domain.Validation{Reason: "city name cannot be blank"}
		}
	}
	for _, e := range data.Edges {
		if !seen[e.From] {
			return domain.Validation{Reason: fmt.Sprintf("edge references unknown city %q", e.From)}
		}
		if !seen[e.To] {
			return domain.Validation{Reason: fmt.Sprintf("edge references unknown city %q", e.To)}
		}
	}
	for _, e := range data.Edges {
		if math.IsNaN(e.Distance) || math.IsInf(e.Distance, 0) || e.Distance < 0 {
			return domain.Validation{Reason: fmt.Sprintf("invalid distance %v on edge %s-%s", e.Distance, e.From, e.To)}
		}
	}
	return domain.Validation{OK: true}
}

// BuildGraph constructs a city graph from an already-validated dataset,
// adding cities then edges in input order. Failures from the graph propagate
// unchanged; no rules are re-checked here.
func BuildGraph(data domain.GraphData) (*citygraph.Graph, error) {
	g := citygraph.New()
	for _, name := range data.Cities {
		if err := g.AddCity(name); err != nil {
			return nil, err
		}
	}
	for _, e := range data.Edges {
		if err := g.AddEdge(e.From, e.To, e.Distance); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// NearbyCities returns destination's direct neighbors within maxDistance,
// sorted ascending by distance. Ties keep insertion order. An unknown or
// blank destination yields an empty result, not an error: probing a city the
// dataset does not know is an ordinary query. Only one hop is considered;
// distances are never summed through intermediate cities.
func NearbyCities(g *citygraph.Graph, destination string, maxDistance float64) ([]domain.NearbyCity, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: graph is required", domain.ErrInvalidInput)
	}
	if destination == "" || !g.HasCity(destination) {
		return []domain.NearbyCity{}, nil
	}
	neighbors, err := g.Neighbors(destination)
	if err != nil {
		return nil, err
	}
	out := make([]domain.NearbyCity, 0, len(neighbors))
	for _, n := range neighbors {
		if n.Distance <= maxDistance {
			out = append(out, domain.NearbyCity{City: n.City, Distance: n.Distance})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out, nil
}

// CityQueryService answers nearby-cities queries for one fixed dataset,
// caching results keyed by city and threshold. The bound graph is static, so
// entries expire by TTL alone and never need invalidation.
type CityQueryService struct {
	graph    *citygraph.Graph
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewCityQueryService(g *citygraph.Graph, c domain.Cache, ttl time.Duration) *CityQueryService {
	return &CityQueryService{graph: g, cache: c, cacheTTL: ttl}
}

func (s *CityQueryService) Nearby(ctx context.Context, city string, within float64) ([]domain.NearbyCity, error) {
	key := fmt.Sprintf("nearby:%s:%g", city, within)
	var out []domain.NearbyCity
	if s.cache != nil {
		ok, err := s.cache.Get(ctx, key, &out)
		if err != nil {
			log.Debug().Err(err).Str("key", key).Msg("cache get failed")
		} else if ok {
			return out, nil
		}
	}
	out, err := NearbyCities(s.graph, city, within)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds())); err != nil {
			log.Debug().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return out, nil
}
