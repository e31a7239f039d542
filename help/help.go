// Package help renders the mutator catalog diagnostics and listings into the user facing text.
package help

import (
	"sort"
	"strings"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/maxgabut/pitest/mutator"
	"github.com/maxgabut/pitest/namer"
)

const operatorNoun = "mutator"

// Describer is implemented by the operators that provide human readable description.
type Describer interface {
	Description() string
}

// Printer renders the catalog messages for given language and naming convention.
type Printer struct {
	printer *message.Printer
	namer   namer.Namer
}

// New creates the Printer for the language 'tag' and the naming function 'n'.
// If 'n' is nil the names are printed in the canonical form.
func New(tag language.Tag, n namer.Namer) *Printer {
	if n == nil {
		n = namer.NamingScreaming
	}
	return &Printer{printer: message.NewPrinter(tag), namer: n}
}

// UnknownMutator renders the 'err' returned by the catalog resolution. If the error is
// the mutator.UnknownNameError the message lists the names known by the 'catalog'.
func (p *Printer) UnknownMutator(err error, catalog *mutator.Catalog) string {
	name, ok := mutator.UnknownName(err)
	if !ok {
		return p.printer.Sprintf("Resolving mutators failed: %v", err)
	}

	sb := &strings.Builder{}
	sb.WriteString(p.printer.Sprintf("Mutator or group '%s' is not known.", name))
	if similar := p.similar(name, catalog); len(similar) > 0 {
		sb.WriteString(" ")
		sb.WriteString(p.printer.Sprintf("Did you mean: %s?", strings.Join(similar, ", ")))
	}
	sb.WriteString("\n")
	sb.WriteString(p.printer.Sprintf("Valid names are: %s", strings.Join(p.names(catalog.Names()), ", ")))
	return sb.String()
}

// Listing renders every registered name with the number of operators it resolves to.
// The names are listed in the registration order.
func (p *Printer) Listing(catalog *mutator.Catalog) string {
	sb := &strings.Builder{}
	for _, name := range catalog.Names() {
		set, err := catalog.ByName(name)
		if err != nil {
			continue
		}
		sb.WriteString(p.printer.Sprintf("%s (%d %s)\n", p.namer(name), set.Len(), Noun(set.Len())))
	}
	return sb.String()
}

// Operators renders the operator identifiers of the 'set', one per line, together with
// their descriptions if available.
func (p *Printer) Operators(set mutator.Set) string {
	sb := &strings.Builder{}
	for _, op := range set.Operators() {
		sb.WriteString(op.ID())
		if d, ok := op.(Describer); ok && d.Description() != "" {
			sb.WriteString(" - ")
			sb.WriteString(d.Description())
		}
		sb.WriteString("\n")
	}
	sb.WriteString(p.printer.Sprintf("%d %s\n", set.Len(), Noun(set.Len())))
	return sb.String()
}

// Noun gets the operator noun in the form matching the 'count'.
func Noun(count int) string {
	if count == 1 {
		return operatorNoun
	}
	return inflection.Plural(operatorNoun)
}

func (p *Printer) names(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = p.namer(name)
	}
	return out
}

// similar gets the registered names that share the first word with the unknown 'name'.
func (p *Printer) similar(name string, catalog *mutator.Catalog) []string {
	canonical := namer.Canonical(name)
	prefix := canonical
	if i := strings.IndexByte(canonical, '_'); i > 0 {
		prefix = canonical[:i]
	}
	if prefix == "" {
		return nil
	}

	var out []string
	for _, registered := range catalog.Names() {
		if registered == canonical || strings.HasPrefix(registered, prefix) {
			out = append(out, p.namer(registered))
		}
	}
	sort.Strings(out)
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}
