package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "ai-therapist/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error reports err to the caller. An HTTPError anywhere in the chain decides the
// status and message; anything else becomes a generic 500 so internals are not echoed.
func Error(c *gin.Context, err error) {
	httpErr, ok := pkgErrors.AsHTTPError(err)
	if !ok {
		InternalError(c, err)
		return
	}

	c.AbortWithStatusJSON(httpErr.StatusCode, Resp{
		ErrorCode: httpErr.Code,
		Message:   httpErr.Message,
	})
}

// ValidationError sends 400 with the binding error attached under errors.
func ValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Resp{
		ErrorCode: ValidationErrorCode,
		Message:   "Invalid request",
		Errors:    err.Error(),
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, _ error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: TooManyRequestsCode,
		Message:   "Rate limit exceeded, please retry later",
	})
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, Resp{
		ErrorCode: 403,
		Message:   "Forbidden",
	})
}
