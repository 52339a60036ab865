package uber

import (
	"strconv"
	"strings"
)

// formatCoordinate renders a latitude or longitude for a request body with
// exactly 5 fractional digits, as the API requires for body coordinates.
func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', 5, 64)
}

// formatQueryFloat renders a float for a query string using its natural
// shortest representation. Query coordinates are intentionally NOT rounded
// to 5 decimals; the API accepts full precision here and the two formats
// must stay distinct.
func formatQueryFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// isBlank reports whether s is empty or whitespace-only.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
