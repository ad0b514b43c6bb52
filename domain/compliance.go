package domain

// ComplianceItem tracks a deadline-bearing obligation (registration, license,
// check) for a person or vehicle.
type ComplianceItem struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	SubjectType   string  `json:"subject_type"`
	SubjectName   string  `json:"subject_name"`
	Category      string  `json:"category"`
	Status        string  `json:"status"`
	DueDate       *string `json:"due_date"`
	CompletedDate *string `json:"completed_date"`
	Notes         *string `json:"notes"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type NewComplianceItemInput struct {
	UserID        int64   `json:"user_id"`
	SubjectType   string  `json:"subject_type"`
	SubjectName   string  `json:"subject_name"`
	Category      string  `json:"category"`
	Status        string  `json:"status"`
	DueDate       *string `json:"due_date"`
	CompletedDate *string `json:"completed_date"`
	Notes         *string `json:"notes"`
}

type ComplianceItemPatch struct {
	SubjectType   *string `json:"subject_type"`
	SubjectName   *string `json:"subject_name"`
	Category      *string `json:"category"`
	Status        *string `json:"status"`
	DueDate       *string `json:"due_date"`
	CompletedDate *string `json:"completed_date"`
	Notes         *string `json:"notes"`
}
