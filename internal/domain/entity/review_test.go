package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
	assert.Equal(t, 0.0, AverageRating([]*Review{}))
	assert.Equal(t, 4.0, AverageRating([]*Review{{Rating: 5.0}, {Rating: 3.0}}))
	assert.InDelta(t, 3.6667, AverageRating([]*Review{{Rating: 5}, {Rating: 4}, {Rating: 2}}), 1e-4)
}

func TestParseReviewItemType(t *testing.T) {
	got, ok := ParseReviewItemType("order")
	assert.True(t, ok)
	assert.Equal(t, ReviewItemOrder, got)

	got, ok = ParseReviewItemType("APPOINTMENT")
	assert.True(t, ok)
	assert.Equal(t, ReviewItemAppointment, got)

	_, ok = ParseReviewItemType("SHOP")
	assert.False(t, ok)
}

func TestValidRating(t *testing.T) {
	assert.True(t, ValidRating(MinRating))
	assert.True(t, ValidRating(4.5))
	assert.True(t, ValidRating(MaxRating))
	assert.False(t, ValidRating(0.99))
	assert.False(t, ValidRating(5.01))
	assert.False(t, ValidRating(math.NaN()))
	assert.False(t, ValidRating(math.Inf(-1)))
}
