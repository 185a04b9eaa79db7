package translator

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// document is the on-disk shape of a message-set file:
//
//	languages: [en, pt]
//	messages:
//	  greetings:
//	    placeholders: [NAME]
//	    translations:
//	      en: "Good morning, NAME!"
//	      pt: "Bom dia, NAME!"
type document struct {
	Languages []string               `yaml:"languages" toml:"languages"`
	Messages  map[string]messageSpec `yaml:"messages" toml:"messages"`
}

type messageSpec struct {
	Placeholders []string          `yaml:"placeholders" toml:"placeholders"`
	Translations map[string]string `yaml:"translations" toml:"translations"`
}

// unmarshalFuncs selects the decoder by file extension.
var unmarshalFuncs = map[string]func([]byte, any) error{
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".toml": toml.Unmarshal,
}

// LoadFile builds a Translator from a single message-set file. The file's
// own languages list fixes the supported set.
func LoadFile(path string) (*Translator, error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	t := New(doc.Languages)
	if err := addDocument(t, doc); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}

// LoadDir builds a Translator from every message-set file under dir
// (extensions .yaml, .yml, .toml; other files are skipped). The supported
// language set is the union of the languages declared across all files,
// so every key in every file must carry a template for every language
// used anywhere in the directory.
func LoadDir(dir string) (*Translator, error) {
	var (
		paths []string
		docs  []*document
		langs []string
	)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := unmarshalFuncs[filepath.Ext(path)]; !ok {
			return nil
		}

		doc, err := readDocument(path)
		if err != nil {
			return err
		}
		paths = append(paths, path)
		docs = append(docs, doc)
		langs = append(langs, doc.Languages...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	t := New(langs)
	for i, doc := range docs {
		if err := addDocument(t, doc); err != nil {
			return nil, fmt.Errorf("load %s: %w", paths[i], err)
		}
	}
	return t, nil
}

// MustLoadDir is LoadDir for init-time wiring, panicking on any error.
func MustLoadDir(dir string) *Translator {
	t, err := LoadDir(dir)
	if err != nil {
		panic(err)
	}
	return t
}

func readDocument(path string) (*document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	unmarshal, ok := unmarshalFuncs[filepath.Ext(path)]
	if !ok {
		return nil, fmt.Errorf("unsupported file type: %s", path)
	}

	var doc document
	if err := unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(doc.Languages) == 0 {
		return nil, fmt.Errorf("file %s missing 'languages' field", path)
	}
	return &doc, nil
}

// addDocument registers every key of doc, in sorted order so that a
// failure is deterministic for a given directory.
func addDocument(t *Translator, doc *document) error {
	keys := make([]string, 0, len(doc.Messages))
	for k := range doc.Messages {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		spec := doc.Messages[key]
		langs := make([]string, 0, len(spec.Translations))
		for lang := range spec.Translations {
			langs = append(langs, lang)
		}
		slices.Sort(langs)

		translations := make([]Translation, 0, len(langs))
		for _, lang := range langs {
			translations = append(translations, Translation{Language: lang, Template: spec.Translations[lang]})
		}
		if err := t.AddMessage(key, spec.Placeholders, translations); err != nil {
			return err
		}
	}
	return nil
}
