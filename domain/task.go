package domain

// Task statuses. Transitions are unconstrained; any status may follow any
// other.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
	TaskStatusBlocked    = "blocked"
)

// ValidTaskStatus reports whether s is one of the known task statuses.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusDone, TaskStatusBlocked:
		return true
	}
	return false
}

// Task is a single actionable item attached to a domain. Optional columns are
// pointers so NULL survives the round trip to the store.
type Task struct {
	ID                 int64   `json:"id"`
	UserID             int64   `json:"user_id"`
	DomainID           int64   `json:"domain_id"`
	Title              string  `json:"title"`
	Description        *string `json:"description"`
	Status             string  `json:"status"`
	Priority           int     `json:"priority"`
	DueDate            *string `json:"due_date"`
	OriginDocID        *int64  `json:"origin_doc_id"`
	RelatedPropertyID  *int64  `json:"related_property_id"`
	RelatedJobID       *int64  `json:"related_job_id"`
	RelatedProviderID  *int64  `json:"related_provider_id"`
	RelatedChildcareID *int64  `json:"related_childcare_id"`
	RelatedTripID      *int64  `json:"related_trip_id"`
	Notes              *string `json:"notes"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
}

// NewTaskInput carries the fields accepted when creating a task. Status is
// always pending on creation; priority defaults to 2 when unset.
type NewTaskInput struct {
	UserID             int64   `json:"user_id"`
	DomainID           int64   `json:"domain_id"`
	Title              string  `json:"title"`
	Description        *string `json:"description"`
	Priority           *int    `json:"priority"`
	DueDate            *string `json:"due_date"`
	OriginDocID        *int64  `json:"origin_doc_id"`
	RelatedPropertyID  *int64  `json:"related_property_id"`
	RelatedJobID       *int64  `json:"related_job_id"`
	RelatedProviderID  *int64  `json:"related_provider_id"`
	RelatedChildcareID *int64  `json:"related_childcare_id"`
	RelatedTripID      *int64  `json:"related_trip_id"`
	Notes              *string `json:"notes"`
}

// TaskPatch holds the editable task fields for a partial update. Nil fields
// are left untouched.
type TaskPatch struct {
	Title              *string `json:"title"`
	Description        *string `json:"description"`
	Priority           *int    `json:"priority"`
	DueDate            *string `json:"due_date"`
	OriginDocID        *int64  `json:"origin_doc_id"`
	RelatedPropertyID  *int64  `json:"related_property_id"`
	RelatedJobID       *int64  `json:"related_job_id"`
	RelatedProviderID  *int64  `json:"related_provider_id"`
	RelatedChildcareID *int64  `json:"related_childcare_id"`
	RelatedTripID      *int64  `json:"related_trip_id"`
	Notes              *string `json:"notes"`
}
