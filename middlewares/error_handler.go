package middlewares

import (
	"io"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/long-kr/Project-Restaurant-Reservation/utils"
)

const genericErrorMessage = "Something went wrong!"

// ErrorHandler renders the last error a handler recorded with c.Error as
// {"error": "..."}. Server errors are logged, and their details are shown to
// clients only in development.
func ErrorHandler(isDevelopment bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		appErr, ok := utils.AsAppError(err)
		if !ok {
			appErr = utils.Internal(err)
		}

		message := appErr.Message
		if appErr.Status >= http.StatusInternalServerError {
			utils.ErrorLogger.WithFields(logrus.Fields{
				"request_id": c.GetString(RequestIDKey),
				"path":       c.Request.URL.Path,
			}).Error(appErr.Error())
			if isDevelopment {
				message = appErr.Error()
			} else {
				message = genericErrorMessage
			}
		}
		utils.RespondError(c, appErr.Status, message)
	}
}

// Recovery turns a panic into a 500 and logs it with the stack.
func Recovery(isDevelopment bool) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		utils.ErrorLogger.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDKey),
			"path":       c.Request.URL.Path,
			"panic":      recovered,
		}).Errorf("panic recovered\n%s", debug.Stack())

		message := genericErrorMessage
		if isDevelopment {
			message = "panic: " + toString(recovered)
		}
		utils.RespondError(c, http.StatusInternalServerError, message)
	})
}

func toString(v any) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	if s, ok := v.(string); ok {
		return s
	}
	return "unexpected error"
}
