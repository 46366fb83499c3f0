package domain

import "context"

// CandidateSearch executes structured attribute queries against the
// relational store. Connectivity failures are surfaced unmodified; retry
// policy belongs to the caller.
type CandidateSearch interface {
	// SearchCandidates returns candidates matching all four filters exactly,
	// bounded by limit. A non-matching filter yields an empty result.
	SearchCandidates(ctx context.Context, filters Filters, limit int) ([]Candidate, error)

	// SearchByLocation is the coarser two-filter variant, used when facility
	// type or department are unavailable.
	SearchByLocation(ctx context.Context, region, subregion string, limit int) ([]Candidate, error)
}

// ReviewStore fetches pre-computed review summaries and embeddings for a
// candidate set. Returned order is store-defined.
type ReviewStore interface {
	// FetchReviews returns one record per candidate that has a stored review
	// summary. Empty input yields empty output without issuing a query.
	FetchReviews(ctx context.Context, candidateIDs []string) ([]ReviewRecord, error)
}
