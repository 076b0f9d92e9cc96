package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "trackfit-companion/pkg/errors"
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

// Error sends an error response. An *errors.HTTPError keeps its status and
// code; any other error is a 400 with its message and the optional data.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
			Data:      data,
		})
		return
	}

	if data == nil {
		data = make(map[string]interface{})
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: ErrorCodeBadRequest,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: 401,
		Message:   "Unauthorized",
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: 429,
		Message:   "Too many requests",
	})
}
