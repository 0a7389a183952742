package agent

import "strings"

// CleanSQL normalizes a model reply into a bare SQL string: trims
// whitespace, strips code-fence markers, and drops leading "SQL:" or
// "Query:" labels the model sometimes adds despite instructions.
func CleanSQL(raw string) string {
	s := strings.TrimSpace(raw)

	s = strings.ReplaceAll(s, "```sql", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)

	for _, label := range []string{"SQL:", "sql:", "Query:", "query:"} {
		if strings.HasPrefix(s, label) {
			s = strings.TrimSpace(s[len(label):])
			break
		}
	}

	return s
}

// IsNoQuery reports whether a cleaned classification reply is the
// no-lookup sentinel. Prefix matching tolerates the model elaborating
// after the sentinel.
func IsNoQuery(reply string) bool {
	return strings.HasPrefix(strings.TrimSpace(reply), "NO_QUERY")
}
