package entity

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func deltaOf(t *testing.T, text string) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(map[string]interface{}{
		"ops": []interface{}{map[string]interface{}{"insert": text}},
	})
	assert.NoError(t, err)
	return raw
}

func TestReadingStats(t *testing.T) {
	tests := []struct {
		name        string
		words       int
		wantMinutes int
	}{
		{"empty", 0, 0},
		{"one word", 1, 1},
		{"exactly 200", 200, 1},
		{"201 words", 201, 2},
		{"exactly 400", 400, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := strings.TrimSpace(strings.Repeat("word ", tt.words))
			count, minutes := ReadingStats(deltaOf(t, text))
			assert.Equal(t, tt.words, count)
			assert.Equal(t, tt.wantMinutes, minutes)
		})
	}
}

func TestReadingStats_IgnoresEmbeds(t *testing.T) {
	raw := json.RawMessage(`{"ops":[
		{"insert":"Monsoon "},
		{"insert":{"image":"https://cdn.example/a.png"}},
		{"insert":"rain\nfalls","attributes":{"bold":true}},
		{"insert":"\n"}
	]}`)

	count, minutes := ReadingStats(raw)

	assert.Equal(t, 3, count)
	assert.Equal(t, 1, minutes)
}

func TestReadingStats_WhitespaceOnly(t *testing.T) {
	count, minutes := ReadingStats(deltaOf(t, " \n\t  \n"))
	assert.Zero(t, count)
	assert.Zero(t, minutes)
}

func TestParseDelta(t *testing.T) {
	_, ok := ParseDelta(json.RawMessage(`{"ops":[]}`))
	assert.True(t, ok)

	for _, raw := range []string{`{}`, `{"ops":null}`, `{"ops":"text"}`, `[1,2]`, `not json`} {
		_, ok := ParseDelta(json.RawMessage(raw))
		assert.False(t, ok, raw)
	}
}
