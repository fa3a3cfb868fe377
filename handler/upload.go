package handler

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"travel_agency/config"
	"travel_agency/helper"
	"travel_agency/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

// GenerateUploadSignature signs client-side upload parameters so the
// browser can push images straight to the object store without the file
// ever passing through this server.
func (h *Handler) GenerateUploadSignature(c *fiber.Ctx) error {
	type SigParams struct {
		Folder   string `json:"folder"`
		PublicID string `json:"public_id"`
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid signature params", err)
	}

	timestamp := time.Now().Unix()

	paramMap := map[string]string{
		"timestamp": fmt.Sprintf("%d", timestamp),
	}
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// raw values, no URL encoding
	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(config.Config("CLOUDINARY_API_SECRET"))

	sum := sha1.Sum([]byte(stringToSign.String()))

	return c.JSON(fiber.Map{
		"signature": hex.EncodeToString(sum[:]),
		"timestamp": timestamp,
		"apiKey":    config.Config("CLOUDINARY_API_KEY"),
		"cloudName": config.Config("CLOUDINARY_CLOUD_NAME"),
	})
}

// UploadImage is the server-side fallback: accepts a multipart file,
// pushes it to the object store and returns the public URL.
func (h *Handler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing file", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Could not read file", err)
	}
	defer file.Close()

	cld, err := helper.InitCloudinary()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Object store is not configured", err)
	}

	resp, err := cld.Upload.Upload(c.Context(), file, uploader.UploadParams{
		Folder: config.ConfigOr("CLOUDINARY_FOLDER", "travel_agency"),
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Upload failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"url":      resp.SecureURL,
		"publicId": resp.PublicID,
	})
}
