package validate

import "testing"

type sample struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,len=10,numeric"`
}

func TestStructValid(t *testing.T) {
	errs := Struct(sample{Name: "Asha", Email: "asha@example.com", Phone: "9876543210"})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestStructKeysUseJSONNames(t *testing.T) {
	errs := Struct(sample{Email: "not-an-email", Phone: "12345"})
	if errs["name"] == "" {
		t.Fatalf("expected name error, got %v", errs)
	}
	if errs["email"] == "" {
		t.Fatalf("expected email error, got %v", errs)
	}
	if errs["phone"] == "" {
		t.Fatalf("expected phone error, got %v", errs)
	}
	if _, ok := errs["Name"]; ok {
		t.Fatalf("expected JSON field keys, got Go field name: %v", errs)
	}
}
