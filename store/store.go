package store

import (
	"errors"

	"travel_agency/model"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrNotConfigured is returned by every operation of the disconnected
	// store that stands in when database credentials are absent.
	ErrNotConfigured = errors.New("data store is not configured")
)

// Store is the single data-access boundary. Handlers receive it explicitly;
// the production implementation talks to Postgres through GORM and the
// in-memory implementation backs tests and the credentials-missing fallback.
type Store interface {
	ListTours(f model.TourFilter) ([]model.Tour, int64, error)
	GetTour(id uint) (*model.Tour, error)
	CreateTour(t *model.Tour) error
	SaveTour(t *model.Tour) error
	DeleteTour(id uint) error
	CountTourSlug(slug string) (int64, error)

	ListPosts(publishedOnly bool) ([]model.Post, error)
	GetPost(id uint) (*model.Post, error)
	GetPostBySlug(slug string, publishedOnly bool) (*model.Post, error)
	CreatePost(p *model.Post) error
	SavePost(p *model.Post) error
	DeletePost(id uint) error
	CountPostSlug(slug string) (int64, error)

	ListReviews(approvedOnly bool, limit *int) ([]model.Review, error)
	GetReview(id uint) (*model.Review, error)
	CreateReview(r *model.Review) error
	SaveReview(r *model.Review) error
	DeleteReview(id uint) error

	ListEnquiries() ([]model.Enquiry, error)
	CreateEnquiry(e *model.Enquiry) error

	CreateBooking(b *model.Booking) error

	GetSettings() (*model.SiteSettings, error)
	SaveSettings(s *model.SiteSettings) error

	ListAdminUsers() ([]model.AdminUser, error)
	IsAdminEmail(email string) (bool, error)
	CreateAdminUser(u *model.AdminUser) error
	DeleteAdminUser(id uint) error

	GetAccount(id uint) (*model.Account, error)
	GetAccountByEmail(email string) (*model.Account, error)
	CreateAccount(a *model.Account) error
	SaveAccount(a *model.Account) error

	CreateResetToken(t *model.PasswordResetToken) error
	ConsumeResetToken(token string) (*model.PasswordResetToken, error)
}
