package staffing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickLeastLoaded(t *testing.T) {
	id, ok := PickLeastLoaded([]Load{{UserID: 7, Active: 4}, {UserID: 3, Active: 1}, {UserID: 9, Active: 2}})
	assert.True(t, ok)
	assert.Equal(t, uint(3), id)
}

func TestPickLeastLoaded_TieGoesToLowestID(t *testing.T) {
	id, ok := PickLeastLoaded([]Load{{UserID: 12, Active: 0}, {UserID: 5, Active: 0}, {UserID: 8, Active: 0}})
	assert.True(t, ok)
	assert.Equal(t, uint(5), id)
}

func TestPickLeastLoaded_Empty(t *testing.T) {
	_, ok := PickLeastLoaded(nil)
	assert.False(t, ok)
}
