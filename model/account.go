package model

import "time"

// Account holds the login credentials for the admin area. Authentication
// alone does not grant admin access: the email must also be present in the
// AdminUser allow-list.
type Account struct {
	DTO
	Email    string `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
}

// AdminUser is the allow-list. Membership is the sole authorization
// criterion: removing a row revokes admin access on the next request even
// while the session token is still valid.
type AdminUser struct {
	DTO
	Email string `gorm:"size:150;uniqueIndex;not null" json:"email"`
}

type PasswordResetToken struct {
	DTO
	AccountId uint      `gorm:"not null;index" json:"accountId"`
	Token     string    `gorm:"size:128;uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type CreateAdminUserInput struct {
	Email string `json:"email" validate:"required,email"`
}
