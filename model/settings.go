package model

import "travel_agency/constants"

// SiteSettings is the single editable configuration row (fixed id) that
// drives branding, contact details and marketing copy on every page.
type SiteSettings struct {
	DTO
	WebsiteName      string `gorm:"size:255" json:"websiteName"`
	Address          string `gorm:"type:text" json:"address"`
	Phone            string `gorm:"size:100" json:"phone"`
	Email            string `gorm:"size:150" json:"email"`
	FacebookUrl      string `gorm:"size:255" json:"facebookUrl"`
	InstagramUrl     string `gorm:"size:255" json:"instagramUrl"`
	YoutubeUrl       string `gorm:"size:255" json:"youtubeUrl"`
	AboutTitle       string `gorm:"size:255" json:"aboutTitle"`
	AboutDescription string `gorm:"type:text" json:"aboutDescription"`
	HeroHeadline     string `gorm:"size:255" json:"heroHeadline"`
	HeroSubheadline  string `gorm:"size:255" json:"heroSubheadline"`
	HeroImageUrl     string `gorm:"size:255" json:"heroImageUrl"`
	HeroBadgeText    string `gorm:"size:255" json:"heroBadgeText"`
	ToursHeading     string `gorm:"size:255" json:"toursHeading"`
	ToursSubheading  string `gorm:"size:255" json:"toursSubheading"`
	Feature1Text     string `gorm:"size:255" json:"feature1Text"`
	Feature2Text     string `gorm:"size:255" json:"feature2Text"`
	Feature3Text     string `gorm:"size:255" json:"feature3Text"`
	PaymentQrUrl     string `gorm:"size:255" json:"paymentQrUrl"`
	PaymentAddress   string `gorm:"size:255" json:"paymentAddress"`
	WhatsappNumber   string `gorm:"size:50" json:"whatsappNumber"`
	GoogleMapUrl     string `gorm:"type:text" json:"googleMapUrl"`
}

type UpdateSettingsInput struct {
	WebsiteName      *string `json:"websiteName" validate:"omitempty,max=255"`
	Address          *string `json:"address"`
	Phone            *string `json:"phone" validate:"omitempty,max=100"`
	Email            *string `json:"email" validate:"omitempty,email"`
	FacebookUrl      *string `json:"facebookUrl" validate:"omitempty,url"`
	InstagramUrl     *string `json:"instagramUrl" validate:"omitempty,url"`
	YoutubeUrl       *string `json:"youtubeUrl" validate:"omitempty,url"`
	AboutTitle       *string `json:"aboutTitle"`
	AboutDescription *string `json:"aboutDescription"`
	HeroHeadline     *string `json:"heroHeadline"`
	HeroSubheadline  *string `json:"heroSubheadline"`
	HeroImageUrl     *string `json:"heroImageUrl" validate:"omitempty,url"`
	HeroBadgeText    *string `json:"heroBadgeText"`
	ToursHeading     *string `json:"toursHeading"`
	ToursSubheading  *string `json:"toursSubheading"`
	Feature1Text     *string `json:"feature1Text"`
	Feature2Text     *string `json:"feature2Text"`
	Feature3Text     *string `json:"feature3Text"`
	PaymentQrUrl     *string `json:"paymentQrUrl" validate:"omitempty,url"`
	PaymentAddress   *string `json:"paymentAddress"`
	WhatsappNumber   *string `json:"whatsappNumber" validate:"omitempty,max=50"`
	GoogleMapUrl     *string `json:"googleMapUrl"`
}

// DefaultSiteSettings returns the fallback record used whenever the stored
// row (or a field of it) is absent, or the store itself is unreachable.
func DefaultSiteSettings() SiteSettings {
	s := SiteSettings{
		WebsiteName:      constants.DEFAULT_WEBSITE_NAME,
		Address:          constants.DEFAULT_ADDRESS,
		Phone:            constants.DEFAULT_PHONE,
		Email:            constants.DEFAULT_EMAIL,
		AboutTitle:       constants.DEFAULT_ABOUT_TITLE,
		AboutDescription: constants.DEFAULT_ABOUT_BODY,
		HeroHeadline:     constants.DEFAULT_HERO_HEADLINE,
		HeroSubheadline:  constants.DEFAULT_HERO_SUBHEADLINE,
		HeroBadgeText:    constants.DEFAULT_HERO_BADGE,
		ToursHeading:     constants.DEFAULT_TOURS_HEADING,
		ToursSubheading:  constants.DEFAULT_TOURS_SUBHEADING,
		Feature1Text:     constants.DEFAULT_FEATURE_1,
		Feature2Text:     constants.DEFAULT_FEATURE_2,
		Feature3Text:     constants.DEFAULT_FEATURE_3,
	}
	s.ID = constants.SiteSettingsID
	return s
}
