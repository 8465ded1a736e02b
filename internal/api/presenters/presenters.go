package presenters

import (
	"ShareMeal-Backend/domain"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	response := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		response.Error = err.Error()
	}
	return c.Status(statusCode).JSON(response)
}

// HandleError translates service errors into the API's status contract:
// 400 invalid input, 401 credential failures, 403 ownership mismatch,
// 404 unknown entity, 500 for anything the store coughed up. The raw store
// error is kept out of the body on 500s.
func HandleError(c *fiber.Ctx, message string, err error) error {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired):
		return ErrorResponse(c, fiber.StatusUnauthorized, message, err)
	case errors.Is(err, domain.ErrNotResourceOwner):
		return ErrorResponse(c, fiber.StatusForbidden, message, err)
	case errors.Is(err, domain.ErrFoodNotFound):
		return ErrorResponse(c, fiber.StatusNotFound, message, err)
	case errors.Is(err, domain.ErrInvalidExpireAt),
		errors.Is(err, domain.ErrInvalidRequestDate),
		errors.Is(err, domain.ErrFoodAlreadyRequested),
		errors.Is(err, domain.ErrParseUUID),
		errors.As(err, &validationErrs):
		return ErrorResponse(c, fiber.StatusBadRequest, message, err)
	default:
		return ErrorResponse(c, fiber.StatusInternalServerError, message, errors.New(domain.MessageFailedProcessRequest))
	}
}
