package router

import (
	"travel_agency/handler"
	"travel_agency/middleware"
	"travel_agency/store"
	"travel_agency/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, st store.Store) {
	h := handler.New(st)
	protected := middleware.Protected(st)

	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	// public site
	v1.Get("/settings", h.GetSettings)
	v1.Get("/tours", validate.TourFilter(), h.GetTours)
	v1.Get("/tours/:tourId", validate.GetById("tourId"), h.GetTourById)
	v1.Get("/posts", h.GetPosts)
	v1.Get("/posts/:slug", h.GetPostBySlug)
	v1.Get("/reviews", h.GetReviews)
	v1.Post("/bookings", validate.CreateBooking(), h.CreateBooking)
	v1.Post("/enquiries", validate.CreateEnquiry(), h.CreateEnquiry)
	v1.Get("/payments/qr", h.PaymentQR)

	// session lifecycle (login / forgot / reset stay outside the gate)
	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), h.Login)
	auth.Post("/refresh-token", h.RefreshToken)
	auth.Post("/logout", h.Logout)
	auth.Get("/me", protected, h.Me)
	auth.Post("/forgot-password", validate.ForgotPassword(), h.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), h.ResetPassword)

	// admin back-office, session + allow-list gated
	admin := v1.Group("/admin", protected)

	admin.Get("/tours", h.GetToursAdmin)
	admin.Get("/tours/:tourId", validate.GetById("tourId"), h.GetTourAdmin)
	admin.Post("/tours", validate.CreateTour(), h.CreateTour)
	admin.Put("/tours/:tourId", validate.EditTour("tourId"), h.EditTour)
	admin.Delete("/tours/:tourId", validate.GetById("tourId"), h.DeleteTour)

	admin.Get("/posts", h.GetPostsAdmin)
	admin.Get("/posts/:postId", validate.GetById("postId"), h.GetPostAdmin)
	admin.Post("/posts", validate.CreatePost(), h.CreatePost)
	admin.Put("/posts/:postId", validate.EditPost("postId"), h.EditPost)
	admin.Patch("/posts/:postId/publish", validate.GetById("postId"), h.TogglePostPublish)
	admin.Delete("/posts/:postId", validate.GetById("postId"), h.DeletePost)

	admin.Get("/reviews", h.GetReviewsAdmin)
	admin.Post("/reviews", validate.CreateReview(), h.CreateReview)
	admin.Patch("/reviews/:reviewId/approve", validate.GetById("reviewId"), h.ToggleReviewApproval)
	admin.Delete("/reviews/:reviewId", validate.GetById("reviewId"), h.DeleteReview)

	admin.Get("/enquiries", h.GetEnquiries)

	admin.Get("/settings", h.GetSettings)
	admin.Put("/settings", validate.UpdateSettings(), h.UpdateSettings)

	admin.Get("/users", h.GetAdminUsers)
	admin.Post("/users", validate.CreateAdminUser(), h.CreateAdminUser)
	admin.Delete("/users/:userId", validate.GetById("userId"), h.DeleteAdminUser)

	admin.Post("/uploads/signature", h.GenerateUploadSignature)
	admin.Post("/uploads", h.UploadImage)
}
