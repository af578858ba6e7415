package entity

// Rating grades a customer.
type Rating string

const (
	RatingA Rating = "A"
	RatingB Rating = "B"
	RatingC Rating = "C"
	RatingD Rating = "D"
)

// DefaultRating is assigned to customers created without an explicit rating.
const DefaultRating = RatingB

// Ratings lists every rating in display order.
func Ratings() []Rating {
	return []Rating{RatingA, RatingB, RatingC, RatingD}
}

// String returns the string representation of the Rating.
func (r Rating) String() string {
	return string(r)
}

// IsValid checks if the Rating is a valid value.
func (r Rating) IsValid() bool {
	switch r {
	case RatingA, RatingB, RatingC, RatingD:
		return true
	default:
		return false
	}
}
