package main

import (
	"log"

	"travel_agency/config"
	"travel_agency/database"
	"travel_agency/router"
	"travel_agency/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGIN", "http://localhost:3000"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	st := buildStore()
	router.SetupRoutes(app, st)

	log.Fatal(app.Listen(":" + config.ConfigOr("PORT", "8002")))
}

// buildStore connects to Postgres when credentials are present. When they
// are not, or the connection fails, the server still comes up on a
// disconnected store: public pages serve fallback content and admin forms
// report a configuration error instead of the process dying.
func buildStore() store.Store {
	if !config.DatabaseConfigured() {
		log.Println("database credentials missing, serving fallback content only")
		return store.NewDisconnectedStore()
	}

	db, err := database.Connect()
	if err != nil {
		log.Println("database connection failed, serving fallback content only:", err)
		return store.NewDisconnectedStore()
	}

	log.Println("connection opened to database")
	return store.NewGormStore(db)
}
