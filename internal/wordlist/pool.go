// Package wordlist provides the read-only word pool consumed by the memorable
// and smart generators. The default pool is embedded; deployments may load
// their own from a YAML file with the same shape.
package wordlist

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Category names present in the default pool.
const (
	Nouns      = "nouns"
	Adjectives = "adjectives"
	Verbs      = "verbs"
	Nature     = "nature"
	Technology = "technology"
	Cosmic     = "cosmic"
	Mythical   = "mythical"
)

var (
	ErrEmptyPool     = errors.New("word pool has no categories")
	ErrEmptyCategory = errors.New("word pool category has no words")
	ErrDuplicateName = errors.New("word pool category declared twice")
	ErrMissingName   = errors.New("word pool category has no name")
)

//go:embed words.yaml
var defaultYAML []byte

type document struct {
	Categories []struct {
		Name  string   `yaml:"name"`
		Words []string `yaml:"words"`
	} `yaml:"categories"`
}

// Pool maps category names to ordered word lists. A Pool is immutable once
// built; accessors return slices the caller must not modify.
type Pool struct {
	order []string
	words map[string][]string
	all   []string
}

// New builds a Pool from categories in the given order.
func New(categories []string, words map[string][]string) (*Pool, error) {
	if len(categories) == 0 {
		return nil, ErrEmptyPool
	}

	p := &Pool{words: make(map[string][]string, len(categories))}
	for _, name := range categories {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			return nil, ErrMissingName
		}
		if _, dup := p.words[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}

		var cleaned []string
		for _, w := range words[name] {
			w = strings.ToLower(strings.TrimSpace(w))
			if w != "" {
				cleaned = append(cleaned, w)
			}
		}
		if len(cleaned) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyCategory, name)
		}

		p.order = append(p.order, name)
		p.words[name] = cleaned
		p.all = append(p.all, cleaned...)
	}

	return p, nil
}

// Load decodes a YAML word pool document.
func Load(r io.Reader) (*Pool, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding word pool: %w", err)
	}

	names := make([]string, 0, len(doc.Categories))
	words := make(map[string][]string, len(doc.Categories))
	for _, c := range doc.Categories {
		name := strings.ToLower(strings.TrimSpace(c.Name))
		if _, dup := words[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		names = append(names, name)
		words[name] = c.Words
	}

	return New(names, words)
}

// LoadFile reads a YAML word pool from path.
func LoadFile(path string) (*Pool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word pool: %w", err)
	}
	defer f.Close()

	return Load(f)
}

var loadDefault = sync.OnceValues(func() (*Pool, error) {
	return Load(bytes.NewReader(defaultYAML))
})

// Default returns the embedded pool. It panics if the embedded data is
// malformed, which is a build defect rather than a runtime condition.
func Default() *Pool {
	p, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("wordlist: embedded pool: %v", err))
	}
	return p
}

// Categories returns the category names in declaration order.
func (p *Pool) Categories() []string {
	return p.order
}

// Words returns the words of a category, or nil if it does not exist.
func (p *Pool) Words(category string) []string {
	return p.words[category]
}

// All returns every word of every category, concatenated in category order.
func (p *Pool) All() []string {
	return p.all
}

// Has reports whether the category exists.
func (p *Pool) Has(category string) bool {
	_, ok := p.words[category]
	return ok
}
