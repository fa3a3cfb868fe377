package store

import (
	"errors"
	"time"

	"travel_agency/constants"
	"travel_agency/model"

	"gorm.io/gorm"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open GORM connection in the Store interface.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func wrapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *gormStore) ListTours(f model.TourFilter) ([]model.Tour, int64, error) {
	db := s.db.Model(&model.Tour{})
	if f.Category != "" {
		db = db.Where("category = ?", f.Category)
	}
	switch f.Sort {
	case constants.SORT_PRICE_ASC:
		db = db.Order("price ASC")
	case constants.SORT_PRICE_DESC:
		db = db.Order("price DESC")
	default:
		db = db.Order("created_at DESC")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit != nil && *f.Limit > 0 {
		db = db.Limit(*f.Limit)
		if f.Page != nil && *f.Page >= 1 {
			db = db.Offset(*f.Limit * (*f.Page - 1))
		}
	}

	var tours []model.Tour
	if err := db.Find(&tours).Error; err != nil {
		return nil, 0, err
	}
	return tours, total, nil
}

func (s *gormStore) GetTour(id uint) (*model.Tour, error) {
	var tour model.Tour
	if err := s.db.First(&tour, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &tour, nil
}

func (s *gormStore) CreateTour(t *model.Tour) error {
	return s.db.Create(t).Error
}

func (s *gormStore) SaveTour(t *model.Tour) error {
	return s.db.Save(t).Error
}

func (s *gormStore) DeleteTour(id uint) error {
	res := s.db.Delete(&model.Tour{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) CountTourSlug(slug string) (int64, error) {
	var count int64
	err := s.db.Model(&model.Tour{}).Where("slug = ?", slug).Count(&count).Error
	return count, err
}

func (s *gormStore) ListPosts(publishedOnly bool) ([]model.Post, error) {
	db := s.db.Model(&model.Post{}).Order("created_at DESC")
	if publishedOnly {
		db = db.Where("is_published = ?", true)
	}
	var posts []model.Post
	if err := db.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *gormStore) GetPost(id uint) (*model.Post, error) {
	var post model.Post
	if err := s.db.First(&post, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &post, nil
}

func (s *gormStore) GetPostBySlug(slug string, publishedOnly bool) (*model.Post, error) {
	db := s.db.Where("slug = ?", slug)
	if publishedOnly {
		db = db.Where("is_published = ?", true)
	}
	var post model.Post
	if err := db.First(&post).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &post, nil
}

func (s *gormStore) CreatePost(p *model.Post) error {
	return s.db.Create(p).Error
}

func (s *gormStore) SavePost(p *model.Post) error {
	return s.db.Save(p).Error
}

func (s *gormStore) DeletePost(id uint) error {
	res := s.db.Delete(&model.Post{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) CountPostSlug(slug string) (int64, error) {
	var count int64
	err := s.db.Model(&model.Post{}).Where("slug = ?", slug).Count(&count).Error
	return count, err
}

func (s *gormStore) ListReviews(approvedOnly bool, limit *int) ([]model.Review, error) {
	db := s.db.Model(&model.Review{}).Order("created_at DESC")
	if approvedOnly {
		db = db.Where("is_approved = ?", true)
	}
	if limit != nil && *limit > 0 {
		db = db.Limit(*limit)
	}
	var reviews []model.Review
	if err := db.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *gormStore) GetReview(id uint) (*model.Review, error) {
	var review model.Review
	if err := s.db.First(&review, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &review, nil
}

func (s *gormStore) CreateReview(r *model.Review) error {
	return s.db.Create(r).Error
}

func (s *gormStore) SaveReview(r *model.Review) error {
	return s.db.Save(r).Error
}

func (s *gormStore) DeleteReview(id uint) error {
	res := s.db.Delete(&model.Review{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) ListEnquiries() ([]model.Enquiry, error) {
	var enquiries []model.Enquiry
	if err := s.db.Order("created_at DESC").Find(&enquiries).Error; err != nil {
		return nil, err
	}
	return enquiries, nil
}

func (s *gormStore) CreateEnquiry(e *model.Enquiry) error {
	return s.db.Create(e).Error
}

func (s *gormStore) CreateBooking(b *model.Booking) error {
	return s.db.Create(b).Error
}

func (s *gormStore) GetSettings() (*model.SiteSettings, error) {
	var settings model.SiteSettings
	if err := s.db.First(&settings, constants.SiteSettingsID).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &settings, nil
}

func (s *gormStore) SaveSettings(settings *model.SiteSettings) error {
	settings.ID = constants.SiteSettingsID
	return s.db.Save(settings).Error
}

func (s *gormStore) ListAdminUsers() ([]model.AdminUser, error) {
	var users []model.AdminUser
	if err := s.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *gormStore) IsAdminEmail(email string) (bool, error) {
	var count int64
	err := s.db.Model(&model.AdminUser{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (s *gormStore) CreateAdminUser(u *model.AdminUser) error {
	return s.db.Create(u).Error
}

func (s *gormStore) DeleteAdminUser(id uint) error {
	res := s.db.Delete(&model.AdminUser{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) GetAccount(id uint) (*model.Account, error) {
	var account model.Account
	if err := s.db.First(&account, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &account, nil
}

func (s *gormStore) GetAccountByEmail(email string) (*model.Account, error) {
	var account model.Account
	if err := s.db.Where("email = ?", email).First(&account).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &account, nil
}

func (s *gormStore) CreateAccount(a *model.Account) error {
	return s.db.Create(a).Error
}

func (s *gormStore) SaveAccount(a *model.Account) error {
	return s.db.Save(a).Error
}

func (s *gormStore) CreateResetToken(t *model.PasswordResetToken) error {
	return s.db.Create(t).Error
}

func (s *gormStore) ConsumeResetToken(token string) (*model.PasswordResetToken, error) {
	var reset model.PasswordResetToken
	err := s.db.Where("token = ? AND expires_at > ?", token, time.Now()).First(&reset).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	if err := s.db.Delete(&reset).Error; err != nil {
		return nil, err
	}
	return &reset, nil
}
