package model

import "time"

// Booking is a record-keeping row only. Payment itself happens out of band
// against the QR code on the payment page; confirmation is manual.
type Booking struct {
	DTO
	Reference     string    `gorm:"size:40;uniqueIndex" json:"reference"`
	TourId        uint      `gorm:"not null;index" json:"tourId"` // not FK-enforced
	CustomerName  string    `gorm:"size:255;not null" json:"customerName"`
	CustomerEmail string    `gorm:"size:150;not null" json:"customerEmail"`
	CustomerPhone string    `gorm:"size:50;not null" json:"customerPhone"`
	TravelDate    time.Time `gorm:"type:date;not null" json:"travelDate"`
	PaymentStatus string    `gorm:"size:20;not null" json:"paymentStatus"`
	Amount        float64   `gorm:"not null" json:"amount"`
}

type CreateBookingInput struct {
	TourId        uint    `json:"tour_id" validate:"required"`
	CustomerName  string  `json:"customer_name" validate:"required,min=2,max=255"`
	CustomerEmail string  `json:"customer_email" validate:"required,email"`
	CustomerPhone string  `json:"customer_phone" validate:"required,max=50"`
	TravelDate    string  `json:"travel_date" validate:"required,datetime=2006-01-02"`
	PaymentStatus *string `json:"payment_status" validate:"omitempty,oneof=pending confirmed"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
}
