package entities

import (
	"encoding/json"
	"errors"
	"time"
)

// Common errors
var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrDuplicateID         = errors.New("duplicate record id")
	ErrInvalidSchedule     = errors.New("appointment requires a datetime or a date and time")
)

// Customer is a person the shop books appointments for.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Service is a bookable catalog entry (haircut, beard trim, ...).
type Service struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Duration  int       `json:"duration"` // minutes
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Appointment links a customer to a service at a point in time.
// StartsAt is the single canonical instant; the date and time-of-day
// views clients work with are derived from it on marshal.
type Appointment struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	ServiceID  string    `json:"serviceId"`
	StartsAt   time.Time `json:"datetime"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Date returns the calendar-date view of the appointment (YYYY-MM-DD).
func (a Appointment) Date() string {
	return a.StartsAt.Format("2006-01-02")
}

// TimeOfDay returns the wall-clock view of the appointment (HH:MM).
func (a Appointment) TimeOfDay() string {
	return a.StartsAt.Format("15:04")
}

// MarshalJSON emits the derived date and time fields alongside the
// canonical datetime so clients never have to re-derive them.
func (a Appointment) MarshalJSON() ([]byte, error) {
	type alias Appointment
	return json.Marshal(struct {
		alias
		Date string `json:"date"`
		Time string `json:"time"`
	}{
		alias: alias(a),
		Date:  a.Date(),
		Time:  a.TimeOfDay(),
	})
}
