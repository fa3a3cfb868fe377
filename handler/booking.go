package handler

import (
	"fmt"
	"time"

	"travel_agency/constants"
	"travel_agency/helper"
	"travel_agency/model"
	"travel_agency/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateBooking is the booking intake endpoint. It records the booking with
// payment_status "pending" unless overridden and does nothing else: no
// tour existence check, no payment gateway, no notifications. Payment
// happens out of band against the QR code and is confirmed manually.
func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateBookingInput)

	travelDate, err := time.Parse("2006-01-02", input.TravelDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	paymentStatus := constants.PAYMENT_STATUS_PENDING
	if input.PaymentStatus != nil {
		paymentStatus = *input.PaymentStatus
	}

	booking := model.Booking{
		Reference:     uuid.NewString(),
		TourId:        input.TourId,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		TravelDate:    travelDate,
		PaymentStatus: paymentStatus,
		Amount:        input.Amount,
	}

	if err := h.store.CreateBooking(&booking); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error creating booking", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":   true,
		"reference": booking.Reference,
	})
}

// PaymentQR renders the payment instructions as a PNG QR code built from
// the configured payment address, for the static pay-by-QR page.
func (h *Handler) PaymentQR(c *fiber.Ctx) error {
	settings := helper.ResolveSettings(h.store)

	content := settings.PaymentAddress
	if content == "" && settings.WhatsappNumber != "" {
		content = fmt.Sprintf("https://wa.me/%s", settings.WhatsappNumber)
	}
	if content == "" {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No payment address configured", nil)
	}

	png, err := utils.GenerateQRCode(content, 512)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
