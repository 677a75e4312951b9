package domain

type InteractionStatus string

const (
	StatusRead     InteractionStatus = "read"
	StatusReading  InteractionStatus = "reading"
	StatusWishlist InteractionStatus = "wishlist"
)

// Interaction records how a user engaged with a book. At most one
// interaction exists per (user, book) pair; updates overwrite in place.
type Interaction struct {
	UserID int64             `json:"user_id"`
	BookID int64             `json:"book_id"`
	Rating *float64          `json:"rating,omitempty"`
	Status InteractionStatus `json:"status"`
}
