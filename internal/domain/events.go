package domain

// OfferCreated is the document-created event emitted once per
// successfully committed offer document. It carries the full offer
// payload plus the new document's identifier.
type OfferCreated struct {
	OfferID string `json:"offerId" validate:"required"`
	Offer   Offer  `json:"offer"`
}
