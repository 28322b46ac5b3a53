package ports

// Request types for the application services. Update requests use pointer
// fields: nil means "leave the stored value unchanged".

type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
	Email string `json:"email" validate:"omitempty,email"`
}

type UpdateCustomerRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Phone *string `json:"phone"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type CreateServiceRequest struct {
	Title    string   `json:"title" validate:"required"`
	Duration *int     `json:"duration"`
	Price    *float64 `json:"price"`
}

type UpdateServiceRequest struct {
	Title    *string  `json:"title" validate:"omitempty,min=1"`
	Duration *int     `json:"duration"`
	Price    *float64 `json:"price"`
}

// CreateAppointmentRequest accepts either a combined RFC 3339 datetime or a
// separate date (YYYY-MM-DD) and time (HH:MM) pair, matching what booking
// clients send.
type CreateAppointmentRequest struct {
	CustomerID string `json:"customerId" validate:"required"`
	ServiceID  string `json:"serviceId" validate:"required"`
	Datetime   string `json:"datetime"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Notes      string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	CustomerID *string `json:"customerId" validate:"omitempty,min=1"`
	ServiceID  *string `json:"serviceId" validate:"omitempty,min=1"`
	Datetime   *string `json:"datetime"`
	Date       *string `json:"date"`
	Time       *string `json:"time"`
	Notes      *string `json:"notes"`
}
