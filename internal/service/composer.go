package service

import (
	"fmt"
	"strconv"
)

const (
	offerNotificationTitle  = "New Offer"
	artworkTitlePlaceholder = "an artwork"
)

// ComposeOfferNotification maps offer fields to a push title and body.
// Absent upstream fields arrive as zero values and carry their
// defaults: the amount formats as 0.00 and the artwork title falls back
// to a generic placeholder.
func ComposeOfferNotification(artworkTitle string, amount float64) (title, body string) {
	if artworkTitle == "" {
		artworkTitle = artworkTitlePlaceholder
	}
	formatted := strconv.FormatFloat(amount, 'f', 2, 64)
	return offerNotificationTitle, fmt.Sprintf("A new offer of $%s was placed on '%s'.", formatted, artworkTitle)
}
