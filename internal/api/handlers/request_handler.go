package handlers

import (
	"ShareMeal-Backend/domain"
	"ShareMeal-Backend/internal/api/presenters"
	"ShareMeal-Backend/pkg/request"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RequestHandler interface {
		RequestFood(c *fiber.Ctx) error
		GetMyRequests(c *fiber.Ctx) error
	}

	requestHandler struct {
		requestService request.RequestService
		validator      *validator.Validate
	}
)

func NewRequestHandler(requestService request.RequestService, validator *validator.Validate) RequestHandler {
	return &requestHandler{
		requestService: requestService,
		validator:      validator,
	}
}

func (h *requestHandler) RequestFood(c *fiber.Ctx) error {
	identity := c.Locals("identity").(domain.VerifiedIdentity)
	req := new(domain.RequestFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRequestFood, err)
	}

	res, err := h.requestService.RequestFood(c.Context(), *req, identity)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedRequestFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRequestFood)
}

func (h *requestHandler) GetMyRequests(c *fiber.Ctx) error {
	identity := c.Locals("identity").(domain.VerifiedIdentity)
	email := c.Query("email")

	requests, err := h.requestService.GetMyRequests(c.Context(), email, identity)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetMyRequests, err)
	}

	return presenters.SuccessResponse(c, requests, fiber.StatusOK, domain.MessageSuccessGetMyRequests)
}
