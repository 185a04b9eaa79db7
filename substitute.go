package translator

import (
	"fmt"
	"strings"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
)

// replaceAll substitutes patterns[i] -> values[i] over template in exactly
// one left-to-right pass. Occurrences are located with a leftmost-first
// Aho-Corasick automaton: the leftmost occurrence always wins, and when
// two patterns could match at the same position the one supplied earlier
// wins. So with patterns ["NAME", "NAME2"] the text "NAME2" is consumed
// as "NAME" followed by a literal "2"; supplying "NAME2" first flips
// that. Replaced spans are never re-scanned.
func replaceAll(template string, patterns, values []string) (result string, err error) {
	if len(patterns) == 0 {
		return template, nil
	}

	// The automaton builder reports internal failures by panicking.
	defer func() {
		if r := recover(); r != nil {
			result = ""
			err = newError(ErrSubstitutionEngine, fmt.Sprint(r))
		}
	}()

	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		MatchKind: ahocorasick.LeftMostFirstMatch,
	})
	ac := builder.Build(patterns)

	var out strings.Builder
	prev := 0
	for _, m := range ac.FindAll(template) {
		out.WriteString(template[prev:m.Start()])
		out.WriteString(values[m.Pattern()])
		prev = m.End()
	}
	out.WriteString(template[prev:])

	return out.String(), nil
}
