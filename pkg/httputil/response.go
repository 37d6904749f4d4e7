package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jwalitptl/medlink-api/pkg/errors"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response wraps all API responses
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// FieldError is one failed binding rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: StatusSuccess,
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  StatusError,
		Message: message,
	}
}

// RespondWithSuccess sends a success response
func RespondWithSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, NewSuccessResponse(data))
}

// RespondWithCreated sends a 201 success response
func RespondWithCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, NewSuccessResponse(data))
}

// RespondWithError sends an error response. Errors without an AppError in
// their chain are reported as internal and their text is not leaked.
func RespondWithError(c *gin.Context, err error) {
	_ = c.Error(err)

	appErr, ok := errors.As(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, NewErrorResponse("Internal server error"))
		return
	}

	c.JSON(appErr.StatusCode(), NewErrorResponse(appErr.Message))
}

// RespondWithBindError reports a failed ShouldBind call as a 400, listing
// each failed field when the validator produced them.
func RespondWithBindError(c *gin.Context, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypeBind)

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		c.JSON(http.StatusBadRequest, NewErrorResponse("invalid request body"))
		return
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}

	c.JSON(http.StatusBadRequest, &Response{
		Status:  StatusError,
		Message: fields[0].Message,
		Data:    fields,
	})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "gt", "gte", "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "datetime":
		return fe.Field() + " must be a date formatted " + fe.Param()
	case "latitude", "longitude":
		return fe.Field() + " is out of range"
	default:
		return fe.Field() + " is invalid"
	}
}
