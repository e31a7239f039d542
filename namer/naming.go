// Package namer converts the mutator catalog names between their canonical form,
// i.e. 'INVERT_NEGS', and the spellings used by the users and the listings.
package namer

import (
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/maxgabut/pitest/class"
	"github.com/maxgabut/pitest/errors"
)

// Namer is the function that change the name with some prepared formatting.
type Namer func(string) string

// Naming conventions supported by the Convention function.
const (
	Screaming  = "screaming"
	Snake      = "snake"
	Kebab      = "kebab"
	Camel      = "camel"
	LowerCamel = "lowercamel"
)

// Canonical converts the user provided 'raw' name into the canonical catalog form,
// i.e. 'invert-negs' or 'invertNegs' into 'INVERT_NEGS'.
func Canonical(raw string) string {
	return strcase.ToScreamingSnake(strings.TrimSpace(raw))
}

// NamingScreaming is a Namer function that converts the 'raw' into the 'SCREAMING_SNAKE_CASE'.
func NamingScreaming(raw string) string {
	return strcase.ToScreamingSnake(raw)
}

// NamingSnake is a Namer function that converts the 'raw' into the 'snake_case_name'.
func NamingSnake(raw string) string {
	return strcase.ToSnake(raw)
}

// NamingKebab is a Namer function that converts the 'raw' into the 'kebab-case-name'.
func NamingKebab(raw string) string {
	return strcase.ToKebab(raw)
}

// NamingCamel is a Namer function that converts the 'raw' into the 'CamelCaseName'.
func NamingCamel(raw string) string {
	return strcase.ToCamel(strings.ToLower(raw))
}

// NamingLowerCamel is a Namer function that converts the 'raw' into the 'camelCaseName'.
func NamingLowerCamel(raw string) string {
	return strcase.ToLowerCamel(strings.ToLower(raw))
}

// Convention gets the Namer for the naming 'convention'. An empty convention
// keeps the canonical names.
func Convention(convention string) (Namer, error) {
	switch strings.ToLower(convention) {
	case Screaming, "":
		return NamingScreaming, nil
	case Snake:
		return NamingSnake, nil
	case Kebab:
		return NamingKebab, nil
	case Camel:
		return NamingCamel, nil
	case LowerCamel:
		return NamingLowerCamel, nil
	default:
		return nil, errors.NewDetf(class.ConfigValueInvalid, "unsupported naming convention: '%s'", convention)
	}
}

// Key gets the spelling independent key of the 'name': upper case letters and digits only.
// All the naming conventions of a name share its key, i.e. 'CRCR1', 'crcr_1' and 'crcr-1'.
func Key(name string) string {
	sb := strings.Builder{}
	sb.Grow(len(name))
	for _, r := range strings.ToUpper(strings.TrimSpace(name)) {
		switch r {
		case '_', '-', ' ', '.':
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Index maps the spelling independent keys to the registered names.
type Index map[string]string

// NewIndex creates the Index of the 'names'. If more names share a key, the first one is kept.
func NewIndex(names []string) Index {
	idx := make(Index, len(names))
	for _, name := range names {
		key := Key(name)
		if _, exists := idx[key]; !exists {
			idx[key] = name
		}
	}
	return idx
}

// Lookup gets the registered name spelled as 'raw' in any naming convention.
func (i Index) Lookup(raw string) (string, bool) {
	name, ok := i[Key(raw)]
	return name, ok
}
