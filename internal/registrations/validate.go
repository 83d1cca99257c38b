package registrations

import (
	"strings"

	"github.com/byp-portal/backend/internal/models"
	"github.com/byp-portal/backend/pkg/validate"
)

// Submission carries the form fields common to the three registration
// variants. File URLs arrive already uploaded; uploads always complete
// before order creation, so verification never sees a partial URL.
type Submission struct {
	Name         string `json:"name" validate:"required,min=2"`
	Gender       string `json:"gender" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,len=10,numeric"`
	DateOfBirth  string `json:"date_of_birth" validate:"required"`
	GovernmentID string `json:"government_id" validate:"required,min=6"`
	College      string `json:"college" validate:"required"`
	OtherCollege string `json:"other_college"`
	Course       string `json:"course" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	Mode         string `json:"mode" validate:"required,oneof=Online Offline"`
	PhotoURL     string `json:"photo_url"`
	VideoURL     string `json:"video_url"`
	TermsAgreed  bool   `json:"terms_agreed"`
}

// Validate runs the per-field rule set plus the conditional rules the forms
// enforce. The result maps JSON field name to message; an empty map means
// the submission may proceed.
func (s Submission) Validate() map[string]string {
	errs := validate.Struct(s)
	if s.College == models.OtherCollege && strings.TrimSpace(s.OtherCollege) == "" {
		errs["other_college"] = "Enter your college name"
	}
	if s.Mode == models.ModeOffline && s.PhotoURL == "" {
		errs["photo_url"] = "A photo is required for offline attendance"
	}
	if !s.TermsAgreed {
		errs["terms_agreed"] = "You must accept the terms and conditions"
	}
	return errs
}

// Registration builds the document persisted after verification succeeds.
func (s Submission) Registration(t models.RegistrationType, amount int64, token, paymentID, orderID string) models.Registration {
	return models.Registration{
		Type:         t,
		Name:         s.Name,
		Gender:       s.Gender,
		Email:        s.Email,
		Phone:        s.Phone,
		DateOfBirth:  s.DateOfBirth,
		GovernmentID: s.GovernmentID,
		College:      s.College,
		OtherCollege: s.OtherCollege,
		Course:       s.Course,
		City:         s.City,
		State:        s.State,
		Mode:         s.Mode,
		PhotoURL:     s.PhotoURL,
		VideoURL:     s.VideoURL,
		TermsAgreed:  s.TermsAgreed,
		AmountPaid:   amount,
		TokenNumber:  token,
		PaymentID:    paymentID,
		OrderID:      orderID,
	}
}
