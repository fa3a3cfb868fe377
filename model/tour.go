package model

import (
	"gorm.io/datatypes"
)

type ItineraryDay struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type AddOn struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type TourHotel struct {
	Name        string `json:"name"`
	ImageUrl    string `json:"imageUrl"`
	Description string `json:"description"`
}

type Tour struct {
	DTO
	Title         string                            `gorm:"not null;index" json:"title"`
	Slug          string                            `gorm:"uniqueIndex" json:"slug"`
	Category      string                            `gorm:"size:30;not null;index" json:"category"` // International / Domestic
	Price         float64                           `gorm:"not null" json:"price"`
	OriginalPrice *float64                          `json:"originalPrice"`
	Duration      string                            `gorm:"size:100" json:"duration"`
	Rating        int                               `gorm:"default:5" json:"rating"`
	Description   string                            `gorm:"type:text" json:"description"`
	ImageUrl      string                            `gorm:"size:255" json:"imageUrl"`
	Itinerary     datatypes.JSONSlice[ItineraryDay] `json:"itinerary"`
	AddOns        datatypes.JSONSlice[AddOn]        `json:"addOns"`
	Hotels        datatypes.JSONSlice[TourHotel]    `json:"hotels"`
}

type Tours []Tour

type CreateTourInput struct {
	Title         string         `json:"title" validate:"required,min=2,max=255"`
	Category      string         `json:"category" validate:"required,oneof=International Domestic"`
	Price         float64        `json:"price" validate:"required,gt=0"`
	OriginalPrice *float64       `json:"originalPrice" validate:"omitempty,gt=0"`
	Duration      string         `json:"duration" validate:"required,max=100"`
	Rating        *int           `json:"rating" validate:"omitempty,min=1,max=5"`
	Description   string         `json:"description"`
	ImageUrl      string         `json:"imageUrl" validate:"omitempty,url"`
	Itinerary     []ItineraryDay `json:"itinerary"`
	AddOns        []AddOn        `json:"addOns"`
	Hotels        []TourHotel    `json:"hotels"`
}

// EditTourInput is a full replacement of the editable fields. The stored
// slug is deliberately absent: once derived from the original title it
// never changes, so published tour URLs stay stable.
type EditTourInput struct {
	Title         string         `json:"title" validate:"required,min=2,max=255"`
	Category      string         `json:"category" validate:"required,oneof=International Domestic"`
	Price         float64        `json:"price" validate:"required,gt=0"`
	OriginalPrice *float64       `json:"originalPrice" validate:"omitempty,gt=0"`
	Duration      string         `json:"duration" validate:"required,max=100"`
	Rating        *int           `json:"rating" validate:"omitempty,min=1,max=5"`
	Description   string         `json:"description"`
	ImageUrl      string         `json:"imageUrl" validate:"omitempty,url"`
	Itinerary     []ItineraryDay `json:"itinerary"`
	AddOns        []AddOn        `json:"addOns"`
	Hotels        []TourHotel    `json:"hotels"`
}

type TourFilter struct {
	Pagination
	Category string `query:"category" validate:"omitempty,oneof=International Domestic"`
	Sort     string `query:"sort" validate:"omitempty,oneof=latest price_asc price_desc"`
}
