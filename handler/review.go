package handler

import (
	"errors"
	"strconv"

	"travel_agency/constants"
	"travel_agency/model"
	"travel_agency/store"
	"travel_agency/utils"

	"github.com/gofiber/fiber/v2"
)

// GetReviews lists approved reviews for the public site.
func (h *Handler) GetReviews(c *fiber.Ctx) error {
	var limit *int
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = &n
		}
	}

	reviews, err := h.store.ListReviews(true, limit)
	if err != nil {
		return utils.DegradedListResponse(c, constants.ERROR_LOADING)
	}

	response := &model.ResponseCustom{Rows: reviews, TotalCount: int64(len(reviews))}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// GetReviewsAdmin includes unapproved reviews.
func (h *Handler) GetReviewsAdmin(c *fiber.Ctx) error {
	reviews, err := h.store.ListReviews(false, nil)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not load reviews", err)
	}

	response := &model.ResponseCustom{Rows: reviews, TotalCount: int64(len(reviews))}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func (h *Handler) CreateReview(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateReviewInput)

	review := model.Review{
		Name:      input.Name,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Source:    input.Source,
		AvatarUrl: input.AvatarUrl,
		Images:    input.Images,
	}
	if input.IsApproved != nil {
		review.IsApproved = *input.IsApproved
	}

	if err := h.store.CreateReview(&review); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not create review", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, review)
}

// ToggleReviewApproval flips the approval gate and replies with the fresh
// row so the admin list reflects authoritative state.
func (h *Handler) ToggleReviewApproval(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	review, err := h.store.GetReview(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Review does not exist", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	review.IsApproved = !review.IsApproved
	if err := h.store.SaveReview(review); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not update review", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, review)
}

func (h *Handler) DeleteReview(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	if err := h.store.DeleteReview(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Review does not exist", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not delete review", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
