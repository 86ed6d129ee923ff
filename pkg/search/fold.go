package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransform descompone (NFD), elimina marcas diacríticas y recompone (NFC).
var foldTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza un término de búsqueda: minúsculas y sin tildes, para que
// "Camisón" y "camison" coincidan en los filtros de catálogo.
func Fold(s string) string {
	out, _, err := transform.String(foldTransform, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return out
}

// Contains reporta si needle aparece en haystack ignorando mayúsculas y tildes.
func Contains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}
