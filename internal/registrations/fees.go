package registrations

import (
	"fmt"

	"github.com/byp-portal/backend/internal/models"
)

// Registration fees in minor units (paise). Participant fees differ by
// presence mode; the other types charge a flat fee.
const (
	FeeParticipantOnline  int64 = 100 * 100
	FeeParticipantOffline int64 = 200 * 100
	FeeMP                 int64 = 300 * 100
	FeeGlobalSummit       int64 = 500 * 100
)

// Fee returns the fee for a registration type and presence mode.
func Fee(t models.RegistrationType, mode string) (int64, error) {
	switch t {
	case models.TypeParticipant:
		if mode == models.ModeOffline {
			return FeeParticipantOffline, nil
		}
		return FeeParticipantOnline, nil
	case models.TypeMP:
		return FeeMP, nil
	case models.TypeGlobalSummit:
		return FeeGlobalSummit, nil
	}
	return 0, fmt.Errorf("unknown registration type %q", t)
}
