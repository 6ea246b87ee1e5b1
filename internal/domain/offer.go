package domain

// Offer is a monetary bid placed on an artwork. Amount and ArtworkTitle
// are optional in the wire payload; their zero values stand in for
// absence and carry fixed defaults downstream.
type Offer struct {
	ToUserID     string  `json:"toUserId" validate:"required"`
	Amount       float64 `json:"amount"`
	ArtworkTitle string  `json:"artworkTitle"`
}

// UserRecord is the slice of the user document this service reads. A
// user who has never registered a device has an empty FCMToken.
type UserRecord struct {
	ID       string `json:"id"`
	FCMToken string `json:"fcmToken"`
}
