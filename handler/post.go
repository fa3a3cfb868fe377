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

// GetPosts lists published posts for the public blog, newest first.
func (h *Handler) GetPosts(c *fiber.Ctx) error {
	posts, err := h.store.ListPosts(true)
	if err != nil {
		return utils.DegradedListResponse(c, constants.ERROR_LOADING)
	}

	response := &model.ResponseCustom{Rows: posts, TotalCount: int64(len(posts))}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// GetPostBySlug is the public detail route. Drafts are invisible here: an
// unpublished post behaves exactly like a missing one.
func (h *Handler) GetPostBySlug(c *fiber.Ctx) error {
	postSlug := c.Params("slug")

	post, err := h.store.GetPostBySlug(postSlug, true)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, post)
}

// GetPostsAdmin includes drafts.
func (h *Handler) GetPostsAdmin(c *fiber.Ctx) error {
	posts, err := h.store.ListPosts(false)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not load posts", err)
	}

	response := &model.ResponseCustom{Rows: posts, TotalCount: int64(len(posts))}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// GetPostAdmin fetches by id with no publish filter, so drafts stay
// editable.
func (h *Handler) GetPostAdmin(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	post, err := h.store.GetPost(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Post does not exist", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, post)
}

func (h *Handler) CreatePost(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreatePostInput)

	postSlug, err := helper.UniquePostSlug(h.store, input.Slug, input.Title)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not derive slug", err)
	}

	post := model.Post{
		Title:    input.Title,
		Slug:     postSlug,
		Content:  input.Content,
		ImageUrl: input.ImageUrl,
	}
	if input.IsPublished != nil {
		post.IsPublished = *input.IsPublished
	}

	if err := h.store.CreatePost(&post); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not create post", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, post)
}

// EditPost keeps the stored slug regardless of title changes.
func (h *Handler) EditPost(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	input := c.Locals("updateInput").(model.EditPostInput)

	post, err := h.store.GetPost(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Post does not exist", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	post.Title = input.Title
	post.Content = input.Content
	post.ImageUrl = input.ImageUrl
	if input.IsPublished != nil {
		post.IsPublished = *input.IsPublished
	}

	if err := h.store.SavePost(post); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not update post", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, post)
}

// TogglePostPublish writes the negation of the current flag and replies
// with the authoritative row, not an optimistic guess.
func (h *Handler) TogglePostPublish(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	post, err := h.store.GetPost(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Post does not exist", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	post.IsPublished = !post.IsPublished
	if err := h.store.SavePost(post); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not update post", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, post)
}

func (h *Handler) DeletePost(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	if err := h.store.DeletePost(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Post does not exist", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not delete post", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
