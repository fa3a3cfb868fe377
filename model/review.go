package model

import "gorm.io/datatypes"

type Review struct {
	DTO
	Name       string                      `gorm:"size:255;not null" json:"name"`
	Rating     int                         `gorm:"not null" json:"rating"`
	Comment    string                      `gorm:"type:text" json:"comment"`
	Source     string                      `gorm:"size:20;not null" json:"source"` // google / website / facebook
	AvatarUrl  string                      `gorm:"size:255" json:"avatarUrl"`
	Images     datatypes.JSONSlice[string] `json:"images"`
	IsApproved bool                        `gorm:"default:false;index" json:"isApproved"`
}

type CreateReviewInput struct {
	Name       string   `json:"name" validate:"required,min=2,max=255"`
	Rating     int      `json:"rating" validate:"required,min=1,max=5"`
	Comment    string   `json:"comment" validate:"required"`
	Source     string   `json:"source" validate:"required,oneof=google website facebook"`
	AvatarUrl  string   `json:"avatarUrl" validate:"omitempty,url"`
	Images     []string `json:"images" validate:"omitempty,dive,url"`
	IsApproved *bool    `json:"isApproved"`
}

type ReviewFilter struct {
	Pagination
	Source *string `query:"source" validate:"omitempty,oneof=google website facebook"`
}
