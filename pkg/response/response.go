package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContentTypeICS is the media type of iCalendar downloads.
const ContentTypeICS = "text/calendar; charset=utf-8"

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

// Error sends a 400 with the error message. Data is never null in the body.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: 1,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends 500 without leaking err to the client.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// ErrorWithStatus sends an error response with an explicit status code.
func ErrorWithStatus(c *gin.Context, status int, err error) {
	c.JSON(status, Resp{
		ErrorCode: status,
		Message:   err.Error(),
	})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) { status(c, http.StatusTooManyRequests) }

// Unauthorized sends 401.
func Unauthorized(c *gin.Context) { status(c, http.StatusUnauthorized) }

// Forbidden sends 403.
func Forbidden(c *gin.Context) { status(c, http.StatusForbidden) }

// ICS sends an iCalendar document inline under filename.
func ICS(c *gin.Context, filename string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename=%q`, filename))
	c.Data(http.StatusOK, ContentTypeICS, body)
}

func status(c *gin.Context, code int) {
	c.JSON(code, Resp{
		ErrorCode: code,
		Message:   http.StatusText(code),
	})
}
