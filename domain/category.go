package domain

// Domain is a category of household/relocation concern grouping tasks. The
// set is seeded once and read-only from the application's perspective.
type Domain struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
