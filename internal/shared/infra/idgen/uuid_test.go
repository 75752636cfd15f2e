package idgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	gen := NewUUIDGenerator()

	first := gen.NewID()
	second := gen.NewID()

	assert.NotEqual(t, first, second)
	parsed, err := uuid.Parse(first)
	assert.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}
