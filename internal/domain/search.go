package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FoldSearch normaliza un texto de búsqueda o un nombre para comparar sin
// distinguir mayúsculas ("Рога" y "рога" coinciden). Un texto solo con
// espacios equivale a no filtrar; en otro caso los espacios se conservan.
func FoldSearch(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return cases.Lower(language.Und).String(s)
}
