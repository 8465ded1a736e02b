package routes

import (
	"ShareMeal-Backend/internal/api/handlers"
	"ShareMeal-Backend/internal/middleware"
	"ShareMeal-Backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	FoodHandler    handlers.FoodHandler
	RequestHandler handlers.RequestHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService

	// PublicFoodListing leaves GET /foods reachable without a credential.
	// The /public/foods variant stays open in every deployment.
	PublicFoodListing bool
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Foods()
	c.Requests()
}

func (c *Config) GuestRoute() {
	c.App.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("server is running")
	})
	c.App.Get("/public/foods", c.FoodHandler.GetFoods)
}

func (c *Config) Foods() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	if c.PublicFoodListing {
		c.App.Get("/foods", c.FoodHandler.GetFoods)
	} else {
		c.App.Get("/foods", auth, c.FoodHandler.GetFoods)
	}

	c.App.Get("/foods-available", auth, c.FoodHandler.GetAvailableFoods)
	c.App.Get("/food/:id", auth, c.FoodHandler.GetFoodDetails)
	c.App.Post("/foods", auth, c.FoodHandler.AddFood)
	c.App.Put("/food/:id", auth, c.FoodHandler.UpdateFood)
	c.App.Delete("/foods/:id", auth, c.FoodHandler.DeleteFood)
	c.App.Post("/foods/image", auth, c.FoodHandler.UploadFoodImage)
	c.App.Get("/my-foods", auth, c.FoodHandler.GetMyFoods)
}

func (c *Config) Requests() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Post("/request-food", auth, c.RequestHandler.RequestFood)
	c.App.Get("/my-requests", auth, c.RequestHandler.GetMyRequests)
}
