package domain

// PackingArea is a room or zone being packed. Boxes belong to areas and items
// to boxes; deleting an area removes the whole subtree.
type PackingArea struct {
	ID                  int64   `json:"id"`
	UserID              int64   `json:"user_id"`
	Name                string  `json:"name"`
	LocationDescription *string `json:"location_description"`
	Notes               *string `json:"notes"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}

type NewPackingAreaInput struct {
	UserID              int64   `json:"user_id"`
	Name                string  `json:"name"`
	LocationDescription *string `json:"location_description"`
	Notes               *string `json:"notes"`
}

type PackingAreaPatch struct {
	Name                *string `json:"name"`
	LocationDescription *string `json:"location_description"`
	Notes               *string `json:"notes"`
}

type PackingBox struct {
	ID        int64    `json:"id"`
	AreaID    int64    `json:"area_id"`
	Label     string   `json:"label"`
	BoxType   *string  `json:"box_type"`
	WeightKg  *float64 `json:"weight_kg"`
	Status    *string  `json:"status"`
	Notes     *string  `json:"notes"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type NewPackingBoxInput struct {
	AreaID   int64    `json:"area_id"`
	Label    string   `json:"label"`
	BoxType  *string  `json:"box_type"`
	WeightKg *float64 `json:"weight_kg"`
	Status   *string  `json:"status"`
	Notes    *string  `json:"notes"`
}

type PackingBoxPatch struct {
	Label    *string  `json:"label"`
	BoxType  *string  `json:"box_type"`
	WeightKg *float64 `json:"weight_kg"`
	Status   *string  `json:"status"`
	Notes    *string  `json:"notes"`
}

type PackingItem struct {
	ID        int64   `json:"id"`
	BoxID     int64   `json:"box_id"`
	Name      string  `json:"name"`
	Quantity  int64   `json:"quantity"`
	Fragile   int64   `json:"fragile"`
	Notes     *string `json:"notes"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type NewPackingItemInput struct {
	BoxID    int64   `json:"box_id"`
	Name     string  `json:"name"`
	Quantity *int64  `json:"quantity"`
	Fragile  *int64  `json:"fragile"`
	Notes    *string `json:"notes"`
}

type PackingItemPatch struct {
	Name     *string `json:"name"`
	Quantity *int64  `json:"quantity"`
	Fragile  *int64  `json:"fragile"`
	Notes    *string `json:"notes"`
}
