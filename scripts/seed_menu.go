package main

import (
	"context"
	"log"
	"time"

	"food-kiosk/internal/model"
	"food-kiosk/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// seedMenu writes a sample catalog into the file store so the storefront
// has something to sell during local development.
func main() {
	dataDir := "data"

	st, err := store.NewFileStore(dataDir, zerolog.Nop())
	if err != nil {
		log.Fatalf("Failed to create store: %v", err)
	}

	now := time.Now()
	meals := []model.MenuItem{
		{
			ID:          uuid.New(),
			Name:        "Burger",
			Description: "Beef burger with cheddar and caramelised onions",
			Price:       9.90,
			Image:       "https://i.ibb.co/sample/burger.png",
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			Name:        "Fries",
			Description: "Crispy shoestring fries with sea salt",
			Price:       3.50,
			Image:       "https://i.ibb.co/sample/fries.png",
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			Name:        "Nasi Lemak",
			Description: "Coconut rice with sambal, anchovies and egg",
			Price:       7.50,
			Image:       "https://i.ibb.co/sample/nasi-lemak.png",
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			Name:        "Iced Milo",
			Description: "Chocolate malt drink over ice",
			Price:       2.80,
			Image:       "https://i.ibb.co/sample/iced-milo.png",
			CreatedAt:   now,
		},
	}

	if err := st.Save(context.Background(), store.KeyMeals, meals); err != nil {
		log.Fatalf("Failed to seed menu: %v", err)
	}

	log.Printf("Seeded %d menu items into %s", len(meals), dataDir)
}
