package models

import "time"

// Ground represents a bookable facility. A ground is divided into SlotCount
// independently bookable sub-slots (lanes, nets, pitches).
type Ground struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Location     string    `bson:"location,omitempty" json:"location,omitempty"`
	SlotCount    int       `bson:"slot_count" json:"slotCount"`
	PricePerHour float64   `bson:"price_per_hour" json:"pricePerHour"`
	OpenTime     string    `bson:"open_time" json:"openTime"`   // "15:04", default 06:00
	CloseTime    string    `bson:"close_time" json:"closeTime"` // "15:04", default 22:00
	ImageURL     string    `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Active       bool      `bson:"active" json:"active"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}

// GroundSummary is the slimmed-down ground view embedded in booking responses.
type GroundSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Summary returns the embeddable view of the ground.
func (g *Ground) Summary() GroundSummary {
	return GroundSummary{
		ID:       g.ID,
		Name:     g.Name,
		Location: g.Location,
		ImageURL: g.ImageURL,
	}
}
