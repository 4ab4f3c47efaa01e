package mailer

import (
	"fmt"
	"strconv"
	"strings"
)

// unknownEmail is what the intake sheet holds when no address was found.
const unknownEmail = "Unknown"

// Row is one line of the daily intake sheet.
type Row struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Date  string `json:"date"`
}

// RowsFromSheet maps raw sheet values (Name, Email, Phone, Date columns) to
// rows. Short rows get empty trailing fields.
func RowsFromSheet(values [][]any) []Row {
	rows := make([]Row, 0, len(values))
	for _, v := range values {
		cell := func(i int) string {
			if i >= len(v) || v[i] == nil {
				return ""
			}
			switch c := v[i].(type) {
			case string:
				return c
			case float64:
				return strconv.FormatFloat(c, 'f', -1, 64)
			default:
				return fmt.Sprint(c)
			}
		}
		rows = append(rows, Row{Name: cell(0), Email: cell(1), Phone: cell(2), Date: cell(3)})
	}
	return rows
}

// DedupeByEmail drops rows with a blank or placeholder address and rows whose
// address, compared case-insensitively, was already kept. The first occurrence
// wins and order is preserved.
func DedupeByEmail(rows []Row) []Row {
	return DedupeBy(rows, func(r Row) string { return r.Email })
}

// DedupeBy is DedupeByEmail for any row type.
func DedupeBy[T any](rows []T, email func(T) string) []T {
	seen := make(map[string]struct{}, len(rows))
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		key := strings.ToLower(strings.TrimSpace(email(r)))
		if key == "" || key == strings.ToLower(unknownEmail) {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}
