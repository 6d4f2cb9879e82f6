package usecase

import "strings"

// matches búsqueda por subcadena sin distinguir mayúsculas. Una búsqueda vacía coincide siempre.
func matches(q string, fields ...string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
