package utils

import (
	"github.com/gin-gonic/gin"
)

type DataResponse struct {
	Data interface{} `json:"data"`
}

type ErrorResponse struct {
	Error interface{} `json:"error"`
}

// RespondJSON writes the success envelope {"data": ...}.
func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, DataResponse{Data: data})
}

// RespondError writes the error envelope {"error": "..."} and aborts the chain.
func RespondError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ErrorResponse{Error: message})
}
