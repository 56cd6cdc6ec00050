package entity

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var suffixPattern = regexp.MustCompile(`^[a-z0-9]{6}$`)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"  Rain over   Dhaka!  ", "rain-over-dhaka"},
		{"Life - and - Death", "life-and-death"},
		{"C++ & Go: 2024 notes", "c-go-2024-notes"},
		{"--edge--", "edge"},
		{"বৃষ্টির দিন", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestGenerateSlug_Suffix(t *testing.T) {
	slug := GenerateSlug("Hello World")

	assert.Regexp(t, `^hello-world-[a-z0-9]{6}$`, slug)
}

func TestGenerateSlug_NonLatinTitle(t *testing.T) {
	slug := GenerateSlug("বৃষ্টির দিন")

	assert.True(t, suffixPattern.MatchString(slug), slug)
}

func TestGenerateSlug_IdenticalTitlesDiffer(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		slug := GenerateSlug("Same Title")
		assert.False(t, seen[slug], "duplicate slug %s", slug)
		seen[slug] = true
	}
}

func TestTagSlug(t *testing.T) {
	assert.Equal(t, "liberation-war", TagSlug("Liberation  War"))
	assert.Equal(t, "poetry", TagSlug(" Poetry "))
}
