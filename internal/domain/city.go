package domain

// CityEdge is an undirected, weighted connection between two named cities.
// Distances are kilometers and must be finite and non-negative.
type CityEdge struct {
	From     string
	To       string
	Distance float64
}

// GraphData is a batch dataset from which a city graph is built. Nil slices
// mean the field was never provided; empty slices are valid.
type GraphData struct {
	Cities []string
	Edges  []CityEdge
}

// Validation is the outcome of checking a GraphData batch. It is a value, not
// an error: callers vet datasets speculatively before committing them.
type Validation struct {
	OK     bool
	Reason string
}

// NearbyCity is one row of a nearby-cities query result.
type NearbyCity struct {
	City     string
	Distance float64
}
