package crmservice

// Customer is the contact profile served by the CRM service. Name and email
// are denormalized onto bookings at creation time.
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ErrorResponse is the CRM service error body
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
