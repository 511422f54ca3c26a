package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookStatus_Valid(t *testing.T) {
	for _, s := range []BookStatus{BookStatusAvailable, BookStatusRequested, BookStatusExchanged, BookStatusSold} {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}
	assert.False(t, BookStatus("reserved").Valid())
	assert.False(t, BookStatus("").Valid())
}

func TestParseBookStatus(t *testing.T) {
	assert.Equal(t, BookStatusSold, ParseBookStatus("sold"))
	assert.Equal(t, BookStatusRequested, ParseBookStatus("requested"))

	// Anything unknown (or absent) falls back to available.
	assert.Equal(t, BookStatusAvailable, ParseBookStatus(""))
	assert.Equal(t, BookStatusAvailable, ParseBookStatus("SOLD"))
	assert.Equal(t, BookStatusAvailable, ParseBookStatus("lost"))
}
