package entity

import (
	"encoding/json"
	"strings"
)

const wordsPerMinute = 200

// Delta is a Quill rich-text document.
type Delta struct {
	Ops []DeltaOp `json:"ops"`
}

type DeltaOp struct {
	Insert     json.RawMessage        `json:"insert,omitempty"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// ParseDelta decodes raw and requires an ops array.
func ParseDelta(raw json.RawMessage) (*Delta, bool) {
	var envelope struct {
		Ops json.RawMessage `json:"ops"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, false
	}
	trimmed := strings.TrimSpace(string(envelope.Ops))
	if !strings.HasPrefix(trimmed, "[") {
		return nil, false
	}

	var d Delta
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, false
	}
	return &d, true
}

// PlainText concatenates the string inserts. Embeds contribute nothing.
func (d *Delta) PlainText() string {
	var sb strings.Builder
	for _, op := range d.Ops {
		var text string
		if len(op.Insert) > 0 && op.Insert[0] == '"' && json.Unmarshal(op.Insert, &text) == nil {
			sb.WriteString(text)
		}
	}
	return sb.String()
}

// ReadingStats returns the word count and reading time in whole minutes,
// rounded up. An empty or malformed body yields zero for both.
func ReadingStats(raw json.RawMessage) (wordCount, readingTime int) {
	d, ok := ParseDelta(raw)
	if !ok {
		return 0, 0
	}
	wordCount = len(strings.Fields(d.PlainText()))
	readingTime = (wordCount + wordsPerMinute - 1) / wordsPerMinute
	return wordCount, readingTime
}
