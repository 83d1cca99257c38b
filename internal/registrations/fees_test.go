package registrations

import (
	"testing"

	"github.com/byp-portal/backend/internal/models"
)

func TestFeeTable(t *testing.T) {
	cases := []struct {
		typ  models.RegistrationType
		mode string
		want int64
	}{
		{models.TypeParticipant, models.ModeOnline, 10000},
		{models.TypeParticipant, models.ModeOffline, 20000},
		{models.TypeMP, models.ModeOnline, 30000},
		{models.TypeMP, models.ModeOffline, 30000},
		{models.TypeGlobalSummit, models.ModeOnline, 50000},
	}
	for _, tc := range cases {
		got, err := Fee(tc.typ, tc.mode)
		if err != nil {
			t.Fatalf("Fee(%s, %s): %v", tc.typ, tc.mode, err)
		}
		if got != tc.want {
			t.Errorf("Fee(%s, %s) = %d, want %d", tc.typ, tc.mode, got, tc.want)
		}
	}
}

func TestFeeUnknownType(t *testing.T) {
	if _, err := Fee(models.RegistrationType("VOLUNTEER"), models.ModeOnline); err == nil {
		t.Fatal("expected error for unknown registration type")
	}
}
