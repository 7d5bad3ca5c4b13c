package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inventory/backend/internal/domain/inventory"
	"github.com/inventory/backend/internal/domain/shared"
	"github.com/inventory/backend/internal/interfaces/http/dto"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// OK sends a 200 response with the given body
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Success sends a 200 `{success:true}` acknowledgement
func (h *BaseHandler) Success(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse())
}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.NewErrorResponse(message))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, message)
}

// ValidationError sends a 400 response with field-level details
func (h *BaseHandler) ValidationError(c *gin.Context, verr *inventory.ValidationError) {
	details := make([]dto.FieldDetail, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		details = append(details, dto.FieldDetail{Field: f.Field, Message: f.Message})
	}
	c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse("Validation failed", details))
}

// HandleDomainError converts domain and validation errors to HTTP
// responses. Error messages stay generic; internal store error text is
// never sent to the client.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var verr *inventory.ValidationError
	if errors.As(err, &verr) {
		h.ValidationError(c, verr)
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		statusCode := dto.GetHTTPStatus(domainErr.Code)
		c.JSON(statusCode, dto.NewErrorResponse(domainErr.Message))
		return
	}

	h.InternalError(c, "An unexpected error occurred")
}
