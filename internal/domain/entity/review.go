package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReviewItemType tags what a review is about.
type ReviewItemType string

const (
	ReviewItemOrder       ReviewItemType = "ORDER"
	ReviewItemAppointment ReviewItemType = "APPOINTMENT"
)

// ParseReviewItemType accepts either tag in any case.
func ParseReviewItemType(s string) (ReviewItemType, bool) {
	switch t := ReviewItemType(strings.ToUpper(strings.TrimSpace(s))); t {
	case ReviewItemOrder, ReviewItemAppointment:
		return t, true
	default:
		return "", false
	}
}

const (
	MinRating = 1.0
	MaxRating = 5.0
)

// ValidRating reports whether r lies in [MinRating, MaxRating]. NaN does not.
func ValidRating(r float64) bool {
	return r >= MinRating && r <= MaxRating
}

// Review is a customer's rating of a received order or completed appointment.
// At most one review per item and author is accepted by the submit gate.
type Review struct {
	ID         uuid.UUID
	AuthorID   uuid.UUID
	AuthorName string
	ShopID     uuid.UUID
	ItemID     uuid.UUID
	ItemType   ReviewItemType
	Rating     float64
	Comment    string
	CreatedAt  time.Time
}

// AverageRating is the arithmetic mean of the ratings, or 0 for none.
func AverageRating(reviews []*Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	var sum float64
	for _, review := range reviews {
		sum += review.Rating
	}

	return sum / float64(len(reviews))
}
