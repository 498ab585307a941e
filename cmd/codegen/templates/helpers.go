package templates

import (
	"strconv"
	"strings"
)

// prefixedStrings returns "p0, p1, ..., p<count-1>", used for type parameter
// and argument lists.
func prefixedStrings(prefix string, count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = prefix + strconv.Itoa(i)
	}
	return strings.Join(parts, ", ")
}
