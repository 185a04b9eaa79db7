package checker

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/lifei6671/translator"
)

// Result is the outcome of checking one locale directory.
type Result struct {
	Languages []string
	Keys      []string

	// UnusedPlaceholders maps a key to its declared placeholders that
	// occur in none of the key's templates.
	UnusedPlaceholders map[string][]string

	// PrefixCollisions maps a key to pairs of declared placeholders
	// where one is a proper prefix of the other ("NAME < NAME2").
	// Which of the two gets substituted then depends on binding order.
	PrefixCollisions map[string][]string

	// TagWarnings lists language identifiers that do not parse as
	// BCP-47 tags. The store treats identifiers as opaque strings, so
	// these are warnings, not errors.
	TagWarnings []string
}

// CheckLocales loads every message-set file under dir and reports the
// issues the loader itself cannot reject: declared-but-unused
// placeholders, placeholder prefix collisions, and non-BCP-47 language
// identifiers. Hard errors (unparseable files, duplicate keys, missing
// or unknown languages) surface from the loader as the returned error.
func CheckLocales(dir string) (*Result, error) {
	tr, err := translator.LoadDir(dir)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Languages:          tr.Languages(),
		Keys:               tr.Keys(),
		UnusedPlaceholders: make(map[string][]string),
		PrefixCollisions:   make(map[string][]string),
	}

	for _, lang := range res.Languages {
		if _, err := language.Parse(lang); err != nil {
			res.TagWarnings = append(res.TagWarnings, lang)
		}
	}

	for _, key := range res.Keys {
		placeholders, err := tr.Placeholders(key)
		if err != nil {
			return nil, err
		}

		// Translate with no bindings returns the raw template.
		templates := make([]string, 0, len(res.Languages))
		for _, lang := range res.Languages {
			tpl, err := tr.Translate(key, lang, nil)
			if err != nil {
				return nil, fmt.Errorf("check %s/%s: %w", key, lang, err)
			}
			templates = append(templates, tpl)
		}

		for _, name := range placeholders {
			used := false
			for _, tpl := range templates {
				if strings.Contains(tpl, name) {
					used = true
					break
				}
			}
			if !used {
				res.UnusedPlaceholders[key] = append(res.UnusedPlaceholders[key], name)
			}
		}

		res.PrefixCollisions[key] = prefixCollisions(placeholders)
		if len(res.PrefixCollisions[key]) == 0 {
			delete(res.PrefixCollisions, key)
		}
	}

	return res, nil
}

// prefixCollisions reports every pair of names where one is a proper
// prefix of the other.
func prefixCollisions(names []string) []string {
	var pairs []string
	for i, a := range names {
		for j, b := range names {
			if i == j || len(a) >= len(b) {
				continue
			}
			if strings.HasPrefix(b, a) {
				pairs = append(pairs, fmt.Sprintf("%s < %s", a, b))
			}
		}
	}
	sort.Strings(pairs)
	return pairs
}

// HasIssues reports whether the result contains anything a CI gate
// should fail on.
func (r *Result) HasIssues() bool {
	return len(r.UnusedPlaceholders) > 0 || len(r.PrefixCollisions) > 0 || len(r.TagWarnings) > 0
}
