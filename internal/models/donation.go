package models

// Donation is a verified donation payment made through the public form.
// Created once, never updated; administrators may delete it.
type Donation struct {
	Name         string `json:"name"`
	Organization string `json:"organization,omitempty"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Amount       int64  `json:"amount"` // minor units
	TokenNumber  string `json:"token_number"`
	PaymentID    string `json:"payment_id"`
	OrderID      string `json:"order_id"`
}

// Sponsorship is a sponsorship enquiry submitted from the public site.
type Sponsorship struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Tier         string `json:"tier"`
	Message      string `json:"message,omitempty"`
}

// ContactMessage is a message from the contact form.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}
