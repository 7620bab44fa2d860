package entity

import "time"

// Store is a physical showroom for the store locator.
type Store struct {
	ID           string
	Name         string
	Street       string
	City         string
	Country      string
	Phone        string
	Latitude     float64
	Longitude    float64
	OpeningHours string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
