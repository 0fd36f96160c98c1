package request

// RatingRequest leaves the range check to the rating service so an out of
// range score gets its own message.
type RatingRequest struct {
	Rating *int `json:"rating" validate:"required"`
}
