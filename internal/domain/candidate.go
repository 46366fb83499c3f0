package domain

// Candidate is a facility matched by structured attribute filters, before
// any similarity ranking. Immutable once fetched; lives for one request.
type Candidate struct {
	ID      string
	Name    string
	Address string
	Phone   string
	URL     string
}

// Filters are the exact-match equality filters for candidate search.
// All fields must match; there is no partial or fuzzy fallback.
type Filters struct {
	Region       string
	Subregion    string
	FacilityType string
	Department   string
}

// RecommendationResult merges a candidate with its similarity score and the
// generated explanation. Built per request, never persisted.
type RecommendationResult struct {
	Candidate
	Similarity  float64
	Explanation string
}
