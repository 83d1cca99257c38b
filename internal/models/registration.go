package models

// RegistrationType distinguishes the three paid registration forms.
type RegistrationType string

const (
	TypeParticipant  RegistrationType = "PARTICIPANT"
	TypeMP           RegistrationType = "MP"
	TypeGlobalSummit RegistrationType = "GLOBAL_SUMMIT"
)

// Presence modes for a registration.
const (
	ModeOnline  = "Online"
	ModeOffline = "Offline"
)

// OtherCollege is the dropdown sentinel that makes the free-text college
// field mandatory.
const OtherCollege = "Other"

// Registration is a verified event registration. It is written exactly once,
// after payment verification succeeds, and never updated afterwards.
type Registration struct {
	Type         RegistrationType `json:"type"`
	Name         string           `json:"name"`
	Gender       string           `json:"gender"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone"`
	DateOfBirth  string           `json:"date_of_birth"`
	GovernmentID string           `json:"government_id"`
	College      string           `json:"college"`
	OtherCollege string           `json:"other_college,omitempty"`
	Course       string           `json:"course"`
	City         string           `json:"city"`
	State        string           `json:"state"`
	Mode         string           `json:"mode"`
	PhotoURL     string           `json:"photo_url,omitempty"`
	VideoURL     string           `json:"video_url,omitempty"`
	TermsAgreed  bool             `json:"terms_agreed"`
	AmountPaid   int64            `json:"amount_paid"` // minor units
	TokenNumber  string           `json:"token_number"`
	PaymentID    string           `json:"payment_id"`
	OrderID      string           `json:"order_id"`
}
