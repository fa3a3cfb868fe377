package store

import "travel_agency/model"

// disconnectedStore stands in when external store credentials are absent.
// Every operation reports ErrNotConfigured, so public pages degrade to
// defaults and admin forms show a configuration error instead of the
// process refusing to start.
type disconnectedStore struct{}

func NewDisconnectedStore() Store {
	return disconnectedStore{}
}

func (disconnectedStore) ListTours(model.TourFilter) ([]model.Tour, int64, error) {
	return nil, 0, ErrNotConfigured
}
func (disconnectedStore) GetTour(uint) (*model.Tour, error) { return nil, ErrNotConfigured }
func (disconnectedStore) CreateTour(*model.Tour) error { return ErrNotConfigured }
func (disconnectedStore) SaveTour(*model.Tour) error { return ErrNotConfigured }
func (disconnectedStore) DeleteTour(uint) error { return ErrNotConfigured }
func (disconnectedStore) CountTourSlug(string) (int64, error) { return 0, ErrNotConfigured }
func (disconnectedStore) ListPosts(bool) ([]model.Post, error) { return nil, ErrNotConfigured }
func (disconnectedStore) GetPost(uint) (*model.Post, error) { return nil, ErrNotConfigured }
func (disconnectedStore) GetPostBySlug(string, bool) (*model.Post, error) {
	return nil, ErrNotConfigured
}
func (disconnectedStore) CreatePost(*model.Post) error { return ErrNotConfigured }
func (disconnectedStore) SavePost(*model.Post) error { return ErrNotConfigured }
func (disconnectedStore) DeletePost(uint) error { return ErrNotConfigured }
func (disconnectedStore) CountPostSlug(string) (int64, error) { return 0, ErrNotConfigured }
func (disconnectedStore) ListReviews(bool, *int) ([]model.Review, error) {
	return nil, ErrNotConfigured
}
func (disconnectedStore) GetReview(uint) (*model.Review, error) { return nil, ErrNotConfigured }
func (disconnectedStore) CreateReview(*model.Review) error { return ErrNotConfigured }
func (disconnectedStore) SaveReview(*model.Review) error { return ErrNotConfigured }
func (disconnectedStore) DeleteReview(uint) error { return ErrNotConfigured }
func (disconnectedStore) ListEnquiries() ([]model.Enquiry, error) { return nil, ErrNotConfigured }
func (disconnectedStore) CreateEnquiry(*model.Enquiry) error { return ErrNotConfigured }
func (disconnectedStore) CreateBooking(*model.Booking) error { return ErrNotConfigured }
func (disconnectedStore) GetSettings() (*model.SiteSettings, error) {
	return nil, ErrNotConfigured
}
func (disconnectedStore) SaveSettings(*model.SiteSettings) error { return ErrNotConfigured }
func (disconnectedStore) ListAdminUsers() ([]model.AdminUser, error) {
	return nil, ErrNotConfigured
}
func (disconnectedStore) IsAdminEmail(string) (bool, error) { return false, ErrNotConfigured }
func (disconnectedStore) CreateAdminUser(*model.AdminUser) error { return ErrNotConfigured }
func (disconnectedStore) DeleteAdminUser(uint) error { return ErrNotConfigured }
func (disconnectedStore) GetAccount(uint) (*model.Account, error) {
	return nil, ErrNotConfigured
}
func (disconnectedStore) GetAccountByEmail(string) (*model.Account, error) {
	return nil, ErrNotConfigured
}
func (disconnectedStore) CreateAccount(*model.Account) error { return ErrNotConfigured }
func (disconnectedStore) SaveAccount(*model.Account) error { return ErrNotConfigured }
func (disconnectedStore) CreateResetToken(*model.PasswordResetToken) error {
	return ErrNotConfigured
}
func (disconnectedStore) ConsumeResetToken(string) (*model.PasswordResetToken, error) {
	return nil, ErrNotConfigured
}
