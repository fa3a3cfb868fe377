package model

type Post struct {
	DTO
	Title       string `gorm:"not null;index" json:"title"`
	Slug        string `gorm:"uniqueIndex" json:"slug"`
	Content     string `gorm:"type:text" json:"content"` // plain text, rendered as-is
	ImageUrl    string `gorm:"size:255" json:"imageUrl"`
	IsPublished bool   `gorm:"default:false;index" json:"isPublished"`
}

type CreatePostInput struct {
	Title       string `json:"title" validate:"required,min=2,max=255"`
	Slug        string `json:"slug" validate:"omitempty,max=255"`
	Content     string `json:"content" validate:"required"`
	ImageUrl    string `json:"imageUrl" validate:"omitempty,url"`
	IsPublished *bool  `json:"isPublished"`
}

// EditPostInput carries no slug field: the slug chosen at creation is
// frozen so published article URLs never break.
type EditPostInput struct {
	Title       string `json:"title" validate:"required,min=2,max=255"`
	Content     string `json:"content" validate:"required"`
	ImageUrl    string `json:"imageUrl" validate:"omitempty,url"`
	IsPublished *bool  `json:"isPublished"`
}
