package employee

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// PlaceholderImageURL is assigned to employees created without a photo.
const PlaceholderImageURL = "/placeholder.svg"

type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Status     Status `json:"status"`
	JoinDate   string `json:"join_date"`
	ImageURL   string `json:"image_url"`
	// BaseSalary is the monthly salary in cents.
	BaseSalary int64 `json:"base_salary"`
}

// Status is the canonical employment status.
type Status string

const (
	StatusActive     Status = "active"
	StatusOnLeave    Status = "on-leave"
	StatusTerminated Status = "terminated"
)

var statusAliases = map[string]Status{
	"active":     StatusActive,
	"on-leave":   StatusOnLeave,
	"on leave":   StatusOnLeave,
	"on_leave":   StatusOnLeave,
	"onleave":    StatusOnLeave,
	"leave":      StatusOnLeave,
	"terminated": StatusTerminated,
	"inactive":   StatusTerminated,
	"resigned":   StatusTerminated,
}

// ParseStatus maps any of the spellings seen in the wild ("Active", "On Leave",
// "Inactive", ...) onto the canonical status.
func ParseStatus(s string) (Status, error) {
	foldMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(foldMarks, s)
	if err != nil {
		folded = s
	}
	key := strings.Join(strings.Fields(strings.ToLower(folded)), " ")
	if status, ok := statusAliases[key]; ok {
		return status, nil
	}
	return "", ErrInvalidStatus
}

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusOnLeave, StatusTerminated:
		return true
	}
	return false
}

// Label is the display form of the status.
func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusOnLeave:
		return "On Leave"
	case StatusTerminated:
		return "Terminated"
	default:
		return string(s)
	}
}
