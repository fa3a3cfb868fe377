package handler

import (
	"errors"

	"travel_agency/constants"
	"travel_agency/helper"
	"travel_agency/model"
	"travel_agency/store"
	"travel_agency/utils"

	"github.com/gofiber/fiber/v2"
)

// GetTours is the public listing: optional category filter, optional
// price sort, latest-first by default. A store failure degrades to an
// "error loading" page body instead of a hard error.
func (h *Handler) GetTours(c *fiber.Ctx) error {
	filter := c.Locals("filter").(model.TourFilter)

	tours, total, err := h.store.ListTours(filter)
	if err != nil {
		return utils.DegradedListResponse(c, constants.ERROR_LOADING)
	}

	response := &model.ResponseCustom{
		Rows:       tours,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// GetTourById is the public detail route. Any miss, including a store
// that is down or unconfigured, renders as not-found.
func (h *Handler) GetTourById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	tour, err := h.store.GetTour(id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, tour)
}

// GetToursAdmin lists every tour for the dashboard, newest first.
func (h *Handler) GetToursAdmin(c *fiber.Ctx) error {
	tours, total, err := h.store.ListTours(model.TourFilter{})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not load tours", err)
	}

	response := &model.ResponseCustom{Rows: tours, TotalCount: total}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func (h *Handler) GetTourAdmin(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	tour, err := h.store.GetTour(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Tour does not exist", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, tour)
}

func (h *Handler) CreateTour(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateTourInput)

	tourSlug, err := helper.UniqueTourSlug(h.store, input.Title)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not derive slug", err)
	}

	rating := 5
	if input.Rating != nil {
		rating = *input.Rating
	}

	tour := model.Tour{
		Title:         input.Title,
		Slug:          tourSlug,
		Category:      input.Category,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Duration:      input.Duration,
		Rating:        rating,
		Description:   input.Description,
		ImageUrl:      input.ImageUrl,
		Itinerary:     input.Itinerary,
		AddOns:        input.AddOns,
		Hotels:        input.Hotels,
	}

	if err := h.store.CreateTour(&tour); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not create tour", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, tour)
}

// EditTour replaces every editable field wholesale. The stored slug is
// reused, never re-derived from the (possibly changed) title, so public
// tour URLs stay stable.
func (h *Handler) EditTour(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	input := c.Locals("updateInput").(model.EditTourInput)

	tour, err := h.store.GetTour(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Tour does not exist", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	tour.Title = input.Title
	tour.Category = input.Category
	tour.Price = input.Price
	tour.OriginalPrice = input.OriginalPrice
	tour.Duration = input.Duration
	if input.Rating != nil {
		tour.Rating = *input.Rating
	}
	tour.Description = input.Description
	tour.ImageUrl = input.ImageUrl
	tour.Itinerary = input.Itinerary
	tour.AddOns = input.AddOns
	tour.Hotels = input.Hotels

	if err := h.store.SaveTour(tour); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not update tour", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, tour)
}

func (h *Handler) DeleteTour(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	if err := h.store.DeleteTour(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Tour does not exist", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not delete tour", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
