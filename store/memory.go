package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"travel_agency/constants"
	"travel_agency/model"
)

// MemoryStore is an in-process Store used by tests. Everything is guarded
// by one mutex; the data volume never justifies anything finer.
type MemoryStore struct {
	mu sync.Mutex

	nextID      uint
	tours       map[uint]model.Tour
	posts       map[uint]model.Post
	reviews     map[uint]model.Review
	enquiries   map[uint]model.Enquiry
	bookings    map[uint]model.Booking
	settings    *model.SiteSettings
	adminUsers  map[uint]model.AdminUser
	accounts    map[uint]model.Account
	resetTokens map[string]model.PasswordResetToken
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:      1,
		tours:       map[uint]model.Tour{},
		posts:       map[uint]model.Post{},
		reviews:     map[uint]model.Review{},
		enquiries:   map[uint]model.Enquiry{},
		bookings:    map[uint]model.Booking{},
		adminUsers:  map[uint]model.AdminUser{},
		accounts:    map[uint]model.Account{},
		resetTokens: map[string]model.PasswordResetToken{},
	}
}

func (s *MemoryStore) stamp(dto *model.DTO) {
	if dto.ID == 0 {
		dto.ID = s.nextID
		s.nextID++
	} else if dto.ID >= s.nextID {
		s.nextID = dto.ID + 1
	}
	if dto.CreatedAt.IsZero() {
		// spread creation times so "latest first" ordering is deterministic
		dto.CreatedAt = time.Now().Add(time.Duration(dto.ID) * time.Microsecond)
	}
	dto.UpdatedAt = time.Now()
}

func (s *MemoryStore) ListTours(f model.TourFilter) ([]model.Tour, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tours []model.Tour
	for _, t := range s.tours {
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		tours = append(tours, t)
	}
	switch f.Sort {
	case constants.SORT_PRICE_ASC:
		sort.Slice(tours, func(i, j int) bool { return tours[i].Price < tours[j].Price })
	case constants.SORT_PRICE_DESC:
		sort.Slice(tours, func(i, j int) bool { return tours[i].Price > tours[j].Price })
	default:
		sort.Slice(tours, func(i, j int) bool { return tours[i].CreatedAt.After(tours[j].CreatedAt) })
	}
	total := int64(len(tours))

	if f.Limit != nil && *f.Limit > 0 {
		offset := 0
		if f.Page != nil && *f.Page >= 1 {
			offset = *f.Limit * (*f.Page - 1)
		}
		if offset > len(tours) {
			offset = len(tours)
		}
		end := offset + *f.Limit
		if end > len(tours) {
			end = len(tours)
		}
		tours = tours[offset:end]
	}
	return tours, total, nil
}

func (s *MemoryStore) GetTour(id uint) (*model.Tour, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tours[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (s *MemoryStore) CreateTour(t *model.Tour) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&t.DTO)
	s.tours[t.ID] = *t
	return nil
}

func (s *MemoryStore) SaveTour(t *model.Tour) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&t.DTO)
	s.tours[t.ID] = *t
	return nil
}

func (s *MemoryStore) DeleteTour(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tours[id]; !ok {
		return ErrNotFound
	}
	delete(s.tours, id)
	return nil
}

func (s *MemoryStore) CountTourSlug(slug string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, t := range s.tours {
		if t.Slug == slug {
			count++
		}
	}
	return count, nil
}

func (s *MemoryStore) ListPosts(publishedOnly bool) ([]model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var posts []model.Post
	for _, p := range s.posts {
		if publishedOnly && !p.IsPublished {
			continue
		}
		posts = append(posts, p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

func (s *MemoryStore) GetPost(id uint) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemoryStore) GetPostBySlug(slug string, publishedOnly bool) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.Slug == slug && (!publishedOnly || p.IsPublished) {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreatePost(p *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&p.DTO)
	s.posts[p.ID] = *p
	return nil
}

func (s *MemoryStore) SavePost(p *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&p.DTO)
	s.posts[p.ID] = *p
	return nil
}

func (s *MemoryStore) DeletePost(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return ErrNotFound
	}
	delete(s.posts, id)
	return nil
}

func (s *MemoryStore) CountPostSlug(slug string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, p := range s.posts {
		if p.Slug == slug {
			count++
		}
	}
	return count, nil
}

func (s *MemoryStore) ListReviews(approvedOnly bool, limit *int) ([]model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var reviews []model.Review
	for _, r := range s.reviews {
		if approvedOnly && !r.IsApproved {
			continue
		}
		reviews = append(reviews, r)
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].CreatedAt.After(reviews[j].CreatedAt) })
	if limit != nil && *limit > 0 && *limit < len(reviews) {
		reviews = reviews[:*limit]
	}
	return reviews, nil
}

func (s *MemoryStore) GetReview(id uint) (*model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reviews[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

func (s *MemoryStore) CreateReview(r *model.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&r.DTO)
	s.reviews[r.ID] = *r
	return nil
}

func (s *MemoryStore) SaveReview(r *model.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&r.DTO)
	s.reviews[r.ID] = *r
	return nil
}

func (s *MemoryStore) DeleteReview(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reviews[id]; !ok {
		return ErrNotFound
	}
	delete(s.reviews, id)
	return nil
}

func (s *MemoryStore) ListEnquiries() ([]model.Enquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var enquiries []model.Enquiry
	for _, e := range s.enquiries {
		enquiries = append(enquiries, e)
	}
	sort.Slice(enquiries, func(i, j int) bool { return enquiries[i].CreatedAt.After(enquiries[j].CreatedAt) })
	return enquiries, nil
}

func (s *MemoryStore) CreateEnquiry(e *model.Enquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&e.DTO)
	s.enquiries[e.ID] = *e
	return nil
}

func (s *MemoryStore) CreateBooking(b *model.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&b.DTO)
	s.bookings[b.ID] = *b
	return nil
}

// Bookings exposes the raw rows for test assertions; the API itself never
// reads bookings back.
func (s *MemoryStore) Bookings() []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	var bookings []model.Booking
	for _, b := range s.bookings {
		bookings = append(bookings, b)
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })
	return bookings
}

func (s *MemoryStore) GetSettings() (*model.SiteSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings == nil {
		return nil, ErrNotFound
	}
	cp := *s.settings
	return &cp, nil
}

func (s *MemoryStore) SaveSettings(settings *model.SiteSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	settings.ID = constants.SiteSettingsID
	cp := *settings
	s.settings = &cp
	return nil
}

func (s *MemoryStore) ListAdminUsers() ([]model.AdminUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var users []model.AdminUser
	for _, u := range s.adminUsers {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *MemoryStore) IsAdminEmail(email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.adminUsers {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) CreateAdminUser(u *model.AdminUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&u.DTO)
	s.adminUsers[u.ID] = *u
	return nil
}

func (s *MemoryStore) DeleteAdminUser(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.adminUsers[id]; !ok {
		return ErrNotFound
	}
	delete(s.adminUsers, id)
	return nil
}

func (s *MemoryStore) GetAccount(id uint) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (s *MemoryStore) GetAccountByEmail(email string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if strings.EqualFold(a.Email, email) {
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateAccount(a *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&a.DTO)
	s.accounts[a.ID] = *a
	return nil
}

func (s *MemoryStore) SaveAccount(a *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&a.DTO)
	s.accounts[a.ID] = *a
	return nil
}

func (s *MemoryStore) CreateResetToken(t *model.PasswordResetToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&t.DTO)
	s.resetTokens[t.Token] = *t
	return nil
}

func (s *MemoryStore) ConsumeResetToken(token string) (*model.PasswordResetToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.resetTokens[token]
	if !ok || t.ExpiresAt.Before(time.Now()) {
		return nil, ErrNotFound
	}
	delete(s.resetTokens, token)
	return &t, nil
}
