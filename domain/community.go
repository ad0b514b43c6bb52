package domain

// CommunityPlace is a church, club, or venue worth keeping track of in the
// destination city.
type CommunityPlace struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	Name      string  `json:"name"`
	Address   *string `json:"address"`
	Category  *string `json:"category"`
	Notes     *string `json:"notes"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type NewCommunityPlaceInput struct {
	UserID   int64   `json:"user_id"`
	Name     string  `json:"name"`
	Address  *string `json:"address"`
	Category *string `json:"category"`
	Notes    *string `json:"notes"`
}

type CommunityPlacePatch struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Category *string `json:"category"`
	Notes    *string `json:"notes"`
}

// CommunityVisit records one visit to a place.
type CommunityVisit struct {
	ID        int64   `json:"id"`
	PlaceID   int64   `json:"place_id"`
	VisitedAt string  `json:"visited_at"`
	Notes     *string `json:"notes"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type NewCommunityVisitInput struct {
	PlaceID   int64   `json:"place_id"`
	VisitedAt *string `json:"visited_at"`
	Notes     *string `json:"notes"`
}
