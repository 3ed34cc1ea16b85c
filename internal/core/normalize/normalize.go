// Package normalize derives the join key for repository names.
// The key is the Unicode lowercase form of the raw name and nothing else:
// whitespace, separators and punctuation are kept as-is
package normalize

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// cases.Caser keeps state and is not safe for concurrent use
var caserPool = sync.Pool{
	New: func() any {
		c := cases.Lower(language.Und)
		return &c
	},
}

// Key returns the case-insensitive join key for a repository name
func Key(repo string) string {
	if repo == "" {
		return ""
	}
	c := caserPool.Get().(*cases.Caser)
	k := c.String(repo)
	caserPool.Put(c)
	return k
}

// Normalizer adapts Key to the domain.Normalizer port
type Normalizer struct{}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns Key(s)
func (*Normalizer) Normalize(s string) string { return Key(s) }
