// Package search implementa la coincidencia de texto libre de los listados:
// subcadena, insensible a mayúsculas y a acentos ("Pérez" coincide con "perez").
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza para comparación: minúsculas y sin marcas diacríticas.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Matches indica si query es subcadena de alguno de los campos, comparando en
// forma normalizada. Query vacía coincide con todo.
func Matches(query string, fields []string) bool {
	if query == "" {
		return true
	}
	q := Fold(query)
	for _, f := range fields {
		if strings.Contains(Fold(f), q) {
			return true
		}
	}
	return false
}
