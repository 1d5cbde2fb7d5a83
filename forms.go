package folio

import (
	"net/url"
	"strings"
)

// formRows reconciles parallel form-array fields into ordered row maps.
// Each field name addresses one group of repeated inputs; group i of every
// field is paired into row i. A field submitted once arrives as a one-element
// slice and a missing field as an empty one, so both scalar and array shapes
// normalize the same way. Rows where any required field is blank after
// trimming are dropped silently; surviving rows keep submission order.
func formRows(form url.Values, fields []string, required []string) []map[string]string {
	n := 0
	for _, f := range fields {
		if len(form[f]) > n {
			n = len(form[f])
		}
	}
	var rows []map[string]string
	for i := 0; i < n; i++ {
		row := make(map[string]string, len(fields))
		for _, f := range fields {
			v := ""
			if vs := form[f]; i < len(vs) {
				v = strings.TrimSpace(vs[i])
			}
			row[f] = v
		}
		complete := true
		for _, f := range required {
			if row[f] == "" {
				complete = false
				break
			}
		}
		if complete {
			rows = append(rows, row)
		}
	}
	return rows
}

// filterEmpty removes empty/whitespace-only strings from a slice, trimming
// the survivors. Used for single-group list fields like hero subtitles.
func filterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// splitCommaList splits a comma-separated input into trimmed non-empty parts.
func splitCommaList(s string) []string {
	return filterEmpty(strings.Split(s, ","))
}
