// Package export renders tabular datasets (leaderboard, exam results) into
// downloadable CSV and PDF documents.
package export

// Dataset defines tabular export content. Rows are keyed by header name so
// column order follows Headers.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// Row is a convenience builder for a dataset row.
func Row(pairs ...string) map[string]string {
	row := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		row[pairs[i]] = pairs[i+1]
	}
	return row
}
