package domain

// Provider is a service provider (medical, utility, trade) the household
// deals with.
type Provider struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
	Notes     *string `json:"notes"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type NewProviderInput struct {
	UserID  int64   `json:"user_id"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

type ProviderPatch struct {
	Name    *string `json:"name"`
	Type    *string `json:"type"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// Appointment is a scheduled meeting, optionally tied to a provider.
type Appointment struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	ProviderID    *int64  `json:"provider_id"`
	Title         string  `json:"title"`
	Description   *string `json:"description"`
	Location      *string `json:"location"`
	StartDatetime string  `json:"start_datetime"`
	EndDatetime   *string `json:"end_datetime"`
	Notes         *string `json:"notes"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type NewAppointmentInput struct {
	UserID        int64   `json:"user_id"`
	ProviderID    *int64  `json:"provider_id"`
	Title         string  `json:"title"`
	Description   *string `json:"description"`
	Location      *string `json:"location"`
	StartDatetime string  `json:"start_datetime"`
	EndDatetime   *string `json:"end_datetime"`
	Notes         *string `json:"notes"`
}

type AppointmentPatch struct {
	ProviderID    *int64  `json:"provider_id"`
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Location      *string `json:"location"`
	StartDatetime *string `json:"start_datetime"`
	EndDatetime   *string `json:"end_datetime"`
	Notes         *string `json:"notes"`
}
