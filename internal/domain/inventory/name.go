package inventory

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName aplica la forma canónica de un nombre de asset: minúsculas Unicode y sin espacios en los extremos.
func NormalizeName(name string) string {
	return strings.TrimSpace(cases.Lower(language.Und).String(name))
}
