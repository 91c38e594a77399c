package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestParseKeepList(t *testing.T) {
	keep, provided := parseKeepList(nil)
	assert.False(t, provided)
	assert.Nil(t, keep)

	keep, provided = parseKeepList(strptr(`["a.png","b.png"]`))
	assert.True(t, provided)
	assert.Equal(t, []string{"a.png", "b.png"}, keep)

	keep, provided = parseKeepList(strptr(`[]`))
	assert.True(t, provided)
	assert.Empty(t, keep)

	// Malformed JSON purges everything rather than failing the update.
	keep, provided = parseKeepList(strptr(`not-json`))
	assert.True(t, provided)
	assert.NotNil(t, keep)
	assert.Empty(t, keep)

	keep, provided = parseKeepList(strptr(`null`))
	assert.True(t, provided)
	assert.NotNil(t, keep)
	assert.Empty(t, keep)
}

func TestDiffAttachments(t *testing.T) {
	current := []string{"a.png", "b.png", "c.png"}

	kept, removed := diffAttachments(current, []string{"c.png", "a.png"})
	assert.Equal(t, []string{"c.png", "a.png"}, kept)
	assert.Equal(t, []string{"b.png"}, removed)

	kept, removed = diffAttachments(current, []string{})
	assert.Empty(t, kept)
	assert.Equal(t, current, removed)

	// Names the record never stored are ignored.
	kept, removed = diffAttachments(current, []string{"a.png", "ghost.png"})
	assert.Equal(t, []string{"a.png"}, kept)
	assert.Equal(t, []string{"b.png", "c.png"}, removed)

	kept, removed = diffAttachments(nil, []string{"a.png"})
	assert.Empty(t, kept)
	assert.Empty(t, removed)
}
