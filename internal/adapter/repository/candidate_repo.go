package repository

import (
	"context"
	"fmt"

	"hospital-recommender/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateSearchRepository struct {
	pool *pgxpool.Pool
}

// NewCandidateSearchRepository creates a CandidateSearch backed by the
// hospital attribute tables.
func NewCandidateSearchRepository(pool *pgxpool.Pool) domain.CandidateSearch {
	return &candidateSearchRepository{pool: pool}
}

const searchCandidatesQuery = `
	SELECT h.id, h.name, h.address, h.tel, COALESCE(h.url, '')
	FROM hospitals h
	JOIN city c ON h.city_code = c.code
	JOIN district d ON h.district_code = d.code
	JOIN hospital_type ht ON h.type_code = ht.code
	JOIN hospital_departments hd ON h.id = hd.hospital_id
	JOIN departments dp ON hd.department_code = dp.department_code
	WHERE c.name = $1
	  AND d.name = $2
	  AND ht.name = $3
	  AND dp.department_name = $4
	LIMIT $5
`

func (r *candidateSearchRepository) SearchCandidates(ctx context.Context, filters domain.Filters, limit int) ([]domain.Candidate, error) {
	rows, err := r.pool.Query(ctx, searchCandidatesQuery,
		filters.Region, filters.Subregion, filters.FacilityType, filters.Department, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()
	return scanCandidates(rows)
}

const searchByLocationQuery = `
	SELECT h.id, h.name, h.address, h.tel, COALESCE(h.url, '')
	FROM hospitals h
	JOIN city c ON h.city_code = c.code
	JOIN district d ON h.district_code = d.code
	WHERE c.name = $1
	  AND d.name = $2
	LIMIT $3
`

func (r *candidateSearchRepository) SearchByLocation(ctx context.Context, region, subregion string, limit int) ([]domain.Candidate, error) {
	rows, err := r.pool.Query(ctx, searchByLocationQuery, region, subregion, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates by location: %w", err)
	}
	defer rows.Close()
	return scanCandidates(rows)
}

func scanCandidates(rows pgx.Rows) ([]domain.Candidate, error) {
	var candidates []domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.URL); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return candidates, nil
}
