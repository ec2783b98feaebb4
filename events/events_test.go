package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlogEvent(t *testing.T) {
	evt := NewBlogEvent(BlogCreated, 3, "hello", true)

	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, BlogCreated, evt.GetType())
	assert.Equal(t, SourceAPI, evt.Source)
	assert.False(t, evt.Timestamp.IsZero())

	raw, err := json.Marshal(evt)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "blog.created", m["type"])
	assert.EqualValues(t, 3, m["blog_id"])
}

func TestToggleType(t *testing.T) {
	assert.Equal(t, BlogActivated, ToggleType(true))
	assert.Equal(t, BlogDeactivated, ToggleType(false))
}
