package domain

// Property is a candidate or current residence.
type Property struct {
	ID         int64    `json:"id"`
	UserID     int64    `json:"user_id"`
	Address    string   `json:"address"`
	Type       string   `json:"type"`
	RentWeekly *float64 `json:"rent_weekly"`
	Status     *string  `json:"status"`
	Notes      *string  `json:"notes"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

type NewPropertyInput struct {
	UserID     int64    `json:"user_id"`
	Address    string   `json:"address"`
	Type       string   `json:"type"`
	RentWeekly *float64 `json:"rent_weekly"`
	Status     *string  `json:"status"`
	Notes      *string  `json:"notes"`
}

type PropertyPatch struct {
	Address    *string  `json:"address"`
	Type       *string  `json:"type"`
	RentWeekly *float64 `json:"rent_weekly"`
	Status     *string  `json:"status"`
	Notes      *string  `json:"notes"`
}

// JobOption is a potential employer/role under consideration.
type JobOption struct {
	ID            int64    `json:"id"`
	UserID        int64    `json:"user_id"`
	Employer      string   `json:"employer"`
	Role          *string  `json:"role"`
	HoursPerWeek  *float64 `json:"hours_per_week"`
	PayRateHourly *float64 `json:"pay_rate_hourly"`
	Status        *string  `json:"status"`
	Pros          *string  `json:"pros"`
	Cons          *string  `json:"cons"`
	Notes         *string  `json:"notes"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

type NewJobOptionInput struct {
	UserID        int64    `json:"user_id"`
	Employer      string   `json:"employer"`
	Role          *string  `json:"role"`
	HoursPerWeek  *float64 `json:"hours_per_week"`
	PayRateHourly *float64 `json:"pay_rate_hourly"`
	Status        *string  `json:"status"`
	Pros          *string  `json:"pros"`
	Cons          *string  `json:"cons"`
	Notes         *string  `json:"notes"`
}

type JobOptionPatch struct {
	Employer      *string  `json:"employer"`
	Role          *string  `json:"role"`
	HoursPerWeek  *float64 `json:"hours_per_week"`
	PayRateHourly *float64 `json:"pay_rate_hourly"`
	Status        *string  `json:"status"`
	Pros          *string  `json:"pros"`
	Cons          *string  `json:"cons"`
	Notes         *string  `json:"notes"`
}

// ChildcareOption is a daycare/school candidate.
type ChildcareOption struct {
	ID           int64    `json:"id"`
	UserID       int64    `json:"user_id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Location     *string  `json:"location"`
	MinAgeMonths *int64   `json:"min_age_months"`
	MaxAgeMonths *int64   `json:"max_age_months"`
	DailyFee     *float64 `json:"daily_fee"`
	Status       *string  `json:"status"`
	Notes        *string  `json:"notes"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

type NewChildcareOptionInput struct {
	UserID       int64    `json:"user_id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Location     *string  `json:"location"`
	MinAgeMonths *int64   `json:"min_age_months"`
	MaxAgeMonths *int64   `json:"max_age_months"`
	DailyFee     *float64 `json:"daily_fee"`
	Status       *string  `json:"status"`
	Notes        *string  `json:"notes"`
}

type ChildcareOptionPatch struct {
	Name         *string  `json:"name"`
	Type         *string  `json:"type"`
	Location     *string  `json:"location"`
	MinAgeMonths *int64   `json:"min_age_months"`
	MaxAgeMonths *int64   `json:"max_age_months"`
	DailyFee     *float64 `json:"daily_fee"`
	Status       *string  `json:"status"`
	Notes        *string  `json:"notes"`
}
