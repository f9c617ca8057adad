package sqlite

import "strings"

// likeEscaper escapes LIKE wildcards so user text matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// WordFilter builds a WHERE fragment requiring every whitespace-separated
// word of text to appear, case-insensitively, in at least one of columns.
// It returns "1" when text has no words.
func WordFilter(text string, columns ...string) (string, []any) {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 || len(columns) == 0 {
		return "1", nil
	}

	clauses := make([]string, 0, len(words))
	args := make([]any, 0, len(words)*len(columns))
	for _, word := range words {
		pattern := "%" + likeEscaper.Replace(word) + "%"
		ors := make([]string, len(columns))
		for i, col := range columns {
			ors[i] = "LOWER(" + col + `) LIKE ? ESCAPE '\'`
			args = append(args, pattern)
		}
		clauses = append(clauses, "("+strings.Join(ors, " OR ")+")")
	}
	return strings.Join(clauses, " AND "), args
}
