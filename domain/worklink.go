package domain

// WorkLink is a bookmarked resource for the handover at the old workplace.
type WorkLink struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Description   *string `json:"description"`
	Category      *string `json:"category"`
	IconEmoji     *string `json:"icon_emoji"`
	RelatedTaskID *int64  `json:"related_task_id"`
	Notes         *string `json:"notes"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type NewWorkLinkInput struct {
	UserID        int64   `json:"user_id"`
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Description   *string `json:"description"`
	Category      *string `json:"category"`
	IconEmoji     *string `json:"icon_emoji"`
	RelatedTaskID *int64  `json:"related_task_id"`
	Notes         *string `json:"notes"`
}

type WorkLinkPatch struct {
	Title         *string `json:"title"`
	URL           *string `json:"url"`
	Description   *string `json:"description"`
	Category      *string `json:"category"`
	IconEmoji     *string `json:"icon_emoji"`
	RelatedTaskID *int64  `json:"related_task_id"`
	Notes         *string `json:"notes"`
}
