package models

// College types offered in the admin form.
const (
	CollegeGovernment = "government"
	CollegePrivate    = "private"
	CollegeDeemed     = "deemed"
)

// College is a participating college. Code is generated once at creation and
// is unique across the collection by serial suffix.
type College struct {
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
	Type  string `json:"type"`
	Code  string `json:"code"`
}
