package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPriority(t *testing.T) {
	assert.Equal(t, uint8(0), clampPriority(-3))
	assert.Equal(t, uint8(5), clampPriority(5))
	assert.Equal(t, uint8(10), clampPriority(42))
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), Event{Type: EventStoryPublished}))
}

var _ Publisher = (*Client)(nil)
