// Package translator is a keyed, multi-language text-template store.
//
// A Translator is constructed once with the full set of supported
// languages. Each message key is registered exactly once via AddMessage,
// together with its declared placeholder names and one template per
// language. Translate then resolves a (key, language) pair and replaces
// every occurrence of every bound placeholder in a single left-to-right
// pass.
//
// The intended lifecycle is build-then-freeze: register all messages from
// one goroutine, after which any number of goroutines may call Translate
// concurrently. AddMessage must not run concurrently with any other call.
package translator

import (
	"slices"
)

// LanguageID is the dense index of a language in the Translator's sorted,
// deduplicated language list. IDs are assigned at construction time and
// are stable for the lifetime of the Translator.
type LanguageID int

// Translation pairs a language identifier with the template text for one
// message in that language.
type Translation struct {
	Language string
	Template string
}

// Binding supplies a replacement value for one declared placeholder at
// translate time.
type Binding struct {
	Placeholder string
	Value       string
}

// Translator holds the supported languages and every registered message.
type Translator struct {
	// languages is sorted ascending and free of duplicates; the position
	// of a language in this slice is its LanguageID.
	languages []string
	messages  map[string]*message
}

// message is one registered key: its declared placeholder names, shared
// by all languages, and one template per LanguageID.
type message struct {
	placeholders []string
	templates    map[LanguageID]string
}

// New builds a Translator supporting exactly the given languages.
// Duplicates in the input are collapsed; the resulting LanguageID
// assignment depends only on the set of languages, not their order.
func New(languages []string) *Translator {
	langs := slices.Clone(languages)
	slices.Sort(langs)
	langs = slices.Compact(langs)

	return &Translator{
		languages: langs,
		messages:  make(map[string]*message),
	}
}

// Languages returns a copy of the supported language identifiers in
// LanguageID order.
func (t *Translator) Languages() []string {
	return slices.Clone(t.languages)
}

// Keys returns the registered message keys in sorted order.
func (t *Translator) Keys() []string {
	keys := make([]string, 0, len(t.messages))
	for k := range t.messages {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Placeholders returns the declared placeholder names for key, in
// declaration order, or an ErrMissingKey error.
func (t *Translator) Placeholders(key string) ([]string, error) {
	msg, ok := t.messages[key]
	if !ok {
		return nil, newError(ErrMissingKey, key)
	}
	return slices.Clone(msg.placeholders), nil
}

// languageID resolves a raw language string to its LanguageID.
func (t *Translator) languageID(language string) (LanguageID, bool) {
	i, ok := slices.BinarySearch(t.languages, language)
	return LanguageID(i), ok
}

// AddMessage registers key with its placeholder names and one template
// per supported language. The whole call either succeeds or leaves the
// Translator untouched:
//
//   - a key registered before fails with ErrDuplicatedKey;
//   - a repeated name in placeholders fails with ErrDuplicatedArgument;
//   - a translation for an unsupported language fails with
//     ErrUnknownLanguage, and a language supplied twice fails with
//     ErrDuplicatedKey;
//   - a supported language left without a template fails with
//     ErrMissingLanguage.
//
// Declared placeholders need not occur in every template, but a value can
// only ever be bound to a declared one.
func (t *Translator) AddMessage(key string, placeholders []string, translations []Translation) error {
	if _, ok := t.messages[key]; ok {
		return newError(ErrDuplicatedKey, key)
	}

	decl := make([]string, 0, len(placeholders))
	for _, name := range placeholders {
		if slices.Contains(decl, name) {
			return newError(ErrDuplicatedArgument, name)
		}
		decl = append(decl, name)
	}

	templates := make(map[LanguageID]string, len(t.languages))
	for _, tr := range translations {
		id, ok := t.languageID(tr.Language)
		if !ok {
			return newError(ErrUnknownLanguage, tr.Language)
		}
		if _, dup := templates[id]; dup {
			return newError(ErrDuplicatedKey, tr.Language)
		}
		templates[id] = tr.Template
	}

	if len(templates) < len(t.languages) {
		for id, lang := range t.languages {
			if _, ok := templates[LanguageID(id)]; !ok {
				return newError(ErrMissingLanguage, lang)
			}
		}
	}

	t.messages[key] = &message{
		placeholders: decl,
		templates:    templates,
	}
	return nil
}

// Translate resolves the template registered for (key, language) and
// substitutes every bound placeholder in a single pass. Placeholders left
// unbound stay in the output as literal text; an empty binding list
// returns the template verbatim.
//
// A binding for an undeclared placeholder fails with ErrUnknownArgument,
// and the same placeholder bound twice fails with ErrDuplicatedArgument.
// Substituted text is never re-scanned, so a value that happens to equal
// another placeholder's marker is left alone.
func (t *Translator) Translate(key, language string, bindings []Binding) (string, error) {
	msg, ok := t.messages[key]
	if !ok {
		return "", newError(ErrMissingKey, key)
	}

	id, ok := t.languageID(language)
	if !ok {
		return "", newError(ErrUnknownLanguage, language)
	}
	template := msg.templates[id]

	patterns := make([]string, 0, len(bindings))
	values := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !slices.Contains(msg.placeholders, b.Placeholder) {
			return "", newError(ErrUnknownArgument, b.Placeholder)
		}
		if slices.Contains(patterns, b.Placeholder) {
			return "", newError(ErrDuplicatedArgument, b.Placeholder)
		}
		patterns = append(patterns, b.Placeholder)
		values = append(values, b.Value)
	}

	return replaceAll(template, patterns, values)
}
