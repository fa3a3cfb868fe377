package helper

import (
	"travel_agency/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

// InitCloudinary builds the object-store client used for media uploads.
func InitCloudinary() (*cloudinary.Cloudinary, error) {
	return cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
}
