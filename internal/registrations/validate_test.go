package registrations

import (
	"testing"

	"github.com/byp-portal/backend/internal/models"
)

func validSubmission() Submission {
	return Submission{
		Name:         "Asha Verma",
		Gender:       "Female",
		Email:        "asha@example.com",
		Phone:        "9876543210",
		DateOfBirth:  "2003-06-12",
		GovernmentID: "123456789012",
		College:      "Delhi Public School",
		Course:       "B.A. Political Science",
		City:         "Delhi",
		State:        "Delhi",
		Mode:         models.ModeOnline,
		TermsAgreed:  true,
	}
}

func TestValidSubmissionPasses(t *testing.T) {
	if errs := validSubmission().Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestOfflineRequiresPhoto(t *testing.T) {
	s := validSubmission()
	s.Mode = models.ModeOffline

	errs := s.Validate()
	if errs["photo_url"] == "" {
		t.Fatalf("expected photo_url error for offline mode, got %v", errs)
	}

	s.PhotoURL = "https://byp-media-bucket.s3.ap-south-1.amazonaws.com/registrations/1/photo.jpg"
	if errs := s.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors with photo attached, got %v", errs)
	}
}

func TestOnlineDoesNotRequirePhoto(t *testing.T) {
	s := validSubmission()
	s.Mode = models.ModeOnline
	if errs := s.Validate(); errs["photo_url"] != "" {
		t.Fatalf("online mode must not require a photo: %v", errs)
	}
}

func TestOtherCollegeSentinelRequiresText(t *testing.T) {
	s := validSubmission()
	s.College = models.OtherCollege
	s.OtherCollege = "  "

	errs := s.Validate()
	if errs["other_college"] == "" {
		t.Fatalf("expected other_college error, got %v", errs)
	}

	s.OtherCollege = "St. Xavier's College"
	if errs := s.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors with other college filled, got %v", errs)
	}
}

func TestTermsMustBeAccepted(t *testing.T) {
	s := validSubmission()
	s.TermsAgreed = false
	if errs := s.Validate(); errs["terms_agreed"] == "" {
		t.Fatalf("expected terms_agreed error, got %v", errs)
	}
}

func TestRequiredFields(t *testing.T) {
	errs := Submission{}.Validate()
	for _, field := range []string{"name", "gender", "email", "phone", "date_of_birth", "government_id", "college", "course", "city", "state", "mode"} {
		if errs[field] == "" {
			t.Errorf("expected error for %s, got none (%v)", field, errs)
		}
	}
}

func TestPhoneMustBeTenDigits(t *testing.T) {
	s := validSubmission()
	s.Phone = "12345"
	if errs := s.Validate(); errs["phone"] == "" {
		t.Fatalf("expected phone error, got %v", errs)
	}
	s.Phone = "98765abcde"
	if errs := s.Validate(); errs["phone"] == "" {
		t.Fatalf("expected phone error for non-digits, got %v", errs)
	}
}
