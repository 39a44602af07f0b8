package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"statusping/internal/api/dto/request"
	"statusping/internal/api/dto/response"
	apperrors "statusping/internal/errors"
	"statusping/internal/service"
)

type AccountHandler interface {
	UpdateAccountPlan() gin.HandlerFunc
}

type accountHandler struct {
	accountService service.AccountService
	logger         Logger
}

func (*accountHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of [%s]", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

// UpdateAccountPlan is called by the billing system, so the target account
// comes from the request body rather than the access token.
func (h *accountHandler) UpdateAccountPlan() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.UpdatePlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: h.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		account, err := h.accountService.UpdateAccountPlan(c, req.AccountID, req.Plan)
		if err != nil {
			if errors.Is(err, apperrors.ErrAccountNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Account not found",
				})
			} else {
				err = fmt.Errorf("AccountHandler.UpdateAccountPlan: %w", err)
				h.logger.LoggingError(c, err, fmt.Sprintf("failed to update plan of account %s", req.AccountID), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.AccountInfoResponse{
			ID:        account.ID,
			Name:      account.Name,
			Slug:      account.Slug,
			Email:     account.Email,
			Plan:      account.Plan,
			IsActive:  account.IsActive,
			CreatedAt: account.CreatedAt,
			UpdatedAt: account.UpdatedAt,
		})
	}
}

func NewAccountHandler(accountService service.AccountService, logger Logger) AccountHandler {
	return &accountHandler{
		accountService: accountService,
		logger:         logger,
	}
}
