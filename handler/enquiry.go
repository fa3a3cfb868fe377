package handler

import (
	"travel_agency/helper"
	"travel_agency/model"
	"travel_agency/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateEnquiry persists a contact-form submission, then notifies the site
// operator by mail without blocking the response. The row is the source of
// truth; the mail is best-effort.
func (h *Handler) CreateEnquiry(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateEnquiryInput)

	enquiry := model.Enquiry{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
	}

	if err := h.store.CreateEnquiry(&enquiry); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not submit enquiry", err)
	}

	settings := helper.ResolveSettings(h.store)
	utils.SendEnquiryNotification(settings.Email, utils.EnquiryMailData{
		Name:    enquiry.Name,
		Email:   enquiry.Email,
		Phone:   enquiry.Phone,
		Message: enquiry.Message,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Enquiry logged successfully",
	})
}

// GetEnquiries is the admin list. Enquiries are read-only: there is no
// update or delete surface anywhere in the application.
func (h *Handler) GetEnquiries(c *fiber.Ctx) error {
	enquiries, err := h.store.ListEnquiries()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not load enquiries", err)
	}

	response := &model.ResponseCustom{Rows: enquiries, TotalCount: int64(len(enquiries))}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}
