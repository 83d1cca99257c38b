// Package export renders document lists as CSV for the admin screens.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/byp-portal/backend/pkg/docstore"
)

// CSV writes docs as CSV. The column set is the union of field names across
// the documents, with id and created_at leading.
func CSV[T any](w io.Writer, docs []docstore.Doc[T]) error {
	maps := make([]map[string]any, 0, len(docs))
	fieldSet := map[string]struct{}{}
	for _, doc := range docs {
		raw, err := json.Marshal(doc.Data)
		if err != nil {
			return fmt.Errorf("encode document %s: %w", doc.ID, err)
		}
		var m map[string]any
		if err := json.Unmarshal(raw, &m); err != nil {
			return fmt.Errorf("decode document %s: %w", doc.ID, err)
		}
		for k := range m {
			fieldSet[k] = struct{}{}
		}
		maps = append(maps, m)
	}

	fields := make([]string, 0, len(fieldSet))
	for k := range fieldSet {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	header := append([]string{"id", "created_at"}, fields...)

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, doc := range docs {
		row := make([]string, 0, len(header))
		row = append(row, doc.ID.String(), doc.CreatedAt.Format(time.RFC3339))
		for _, f := range fields {
			row = append(row, cell(maps[i][f]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func cell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		// json numbers; render integers without the decimal point
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(raw)
}
