package config

import (
	"ShareMeal-Backend/internal/api/handlers"
	"ShareMeal-Backend/internal/api/routes"
	"ShareMeal-Backend/internal/middleware"
	"ShareMeal-Backend/internal/utils"
	"ShareMeal-Backend/internal/utils/cache"
	"ShareMeal-Backend/internal/utils/storage"
	"ShareMeal-Backend/pkg/food"
	"ShareMeal-Backend/pkg/jwt"
	"ShareMeal-Backend/pkg/request"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	listingCache := cache.New(utils.GetConfig("REDIS_ADDR"))

	// Repository
	foodRepository := food.NewFoodRepository(db)
	requestRepository := request.NewRequestRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	foodService := food.NewFoodService(foodRepository, s3, listingCache)
	requestService := request.NewRequestService(
		requestRepository,
		foodRepository,
		listingCache,
		utils.GetConfigBool("STRICT_REQUEST_TRANSITION"),
	)

	// Handler
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	requestHandler := handlers.NewRequestHandler(requestService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		FoodHandler:       foodHandler,
		RequestHandler:    requestHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
		PublicFoodListing: utils.GetConfigBool("PUBLIC_FOOD_LISTING"),
	}
	routesConfig.Setup()
	return app, nil
}
