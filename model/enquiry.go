package model

type Enquiry struct {
	DTO
	Name    string `gorm:"size:255;not null" json:"name"`
	Email   string `gorm:"size:150;not null" json:"email"`
	Phone   string `gorm:"size:50" json:"phone"`
	Message string `gorm:"type:text;not null" json:"message"`
}

type CreateEnquiryInput struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=50"`
	Message string `json:"message" validate:"required"`
}
