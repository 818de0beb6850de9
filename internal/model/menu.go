package model

import (
	"time"

	"github.com/google/uuid"
)

// MenuItem represents a sellable item in the menu catalog.
type MenuItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MenuItemDraft is the payload for creating or updating a menu item,
// carrying the raw image bytes before they are hosted.
// Price is a pointer so a missing price is distinguishable from zero.
type MenuItemDraft struct {
	Name        string
	Description string
	Price       *float64
	Image       []byte
	ImageType   string
}
