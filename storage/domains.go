package storage

import (
	"context"
	"fmt"

	"pdm-api/domain"
)

// ListDomains returns the seeded category set in id order.
func (s *Store) ListDomains(ctx context.Context) ([]domain.Domain, error) {
	rows, err := s.QueryMany(ctx, "SELECT * FROM domains ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	defer rows.Close()

	domains := []domain.Domain{}
	for rows.Next() {
		var d domain.Domain
		if err := rows.Scan(&d.ID, &d.Name, &d.Slug, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan domain: %w", err)
		}
		domains = append(domains, d)
	}
	return domains, rows.Err()
}
