package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/byp-portal/backend/pkg/docstore"
)

type row struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
	Online bool   `json:"online"`
}

func TestCSVHeaderAndRows(t *testing.T) {
	id := uuid.New()
	created := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	docs := []docstore.Doc[row]{
		{ID: id, CreatedAt: created, Data: row{Name: "Asha", Amount: 30000, Online: true}},
	}

	var buf bytes.Buffer
	if err := CSV(&buf, docs); err != nil {
		t.Fatalf("render csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if lines[0] != "id,created_at,amount,name,online" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	want := id.String() + ",2026-01-15T10:00:00Z,30000,Asha,true"
	if lines[1] != want {
		t.Fatalf("unexpected row: %q want %q", lines[1], want)
	}
}

func TestCSVEmptyList(t *testing.T) {
	var buf bytes.Buffer
	if err := CSV(&buf, []docstore.Doc[row]{}); err != nil {
		t.Fatalf("render csv: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "id,created_at" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
