package entity

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
)

const (
	slugSuffixLen      = 6
	slugSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// Slugify lowercases title and reduces it to [a-z0-9-] words.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = nonSlugChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// GenerateSlug appends a random suffix to the slugified title. Titles with no
// ASCII letters or digits yield the suffix alone.
func GenerateSlug(title string) string {
	base := Slugify(title)
	suffix := randomSuffix(slugSuffixLen)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

// TagSlug is the deterministic slug used for tags.
func TagSlug(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

func randomSuffix(n int) string {
	max := big.NewInt(int64(len(slugSuffixAlphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic("entity: crypto/rand unavailable: " + err.Error())
		}
		b[i] = slugSuffixAlphabet[idx.Int64()]
	}
	return string(b)
}
