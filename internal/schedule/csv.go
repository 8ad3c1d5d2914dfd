package schedule

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gyeh/mbsfacts/internal/model"
)

// ParseCSV reads an MBS CSV export, mapping headers case-insensitively onto
// the canonical fields. Rows without a usable item number are skipped.
func ParseCSV(path string) ([]model.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	colField := mapColumns(header)
	hasItemNum := false
	for _, field := range colField {
		if field == "item_num" {
			hasItemNum = true
			break
		}
	}
	if !hasItemNum {
		return nil, fmt.Errorf("no item number column found in csv header")
	}

	var items []model.Item
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		fields := make(map[string]string, len(fieldAliases))
		for i, field := range colField {
			if field == "" || i >= len(record) {
				continue
			}
			fields[field] = record[i]
		}
		if it, ok := itemFromFields(fields); ok {
			items = append(items, it)
		}
	}
	return items, nil
}

// mapColumns resolves each header column to a canonical field name, "" when
// unrecognized. Loose item-number header spellings are honored.
func mapColumns(header []string) []string {
	out := make([]string, len(header))
	for i, col := range header {
		name := strings.TrimSpace(col)
		for _, fa := range fieldAliases {
			if matchesAlias(name, fa.aliases) {
				out[i] = fa.field
				break
			}
		}
		if out[i] == "" {
			switch strings.ToLower(name) {
			case "item_num", "item number":
				out[i] = "item_num"
			}
		}
	}
	return out
}

// ParseFile dispatches on the file extension: .xml or .csv.
func ParseFile(path string) ([]model.Item, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return ParseXML(path)
	case ".csv":
		return ParseCSV(path)
	default:
		return nil, fmt.Errorf("unsupported schedule format %q (want .xml or .csv)", filepath.Ext(path))
	}
}
