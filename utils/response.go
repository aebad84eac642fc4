// File: /utils/response.go
package utils

import (
	"github.com/gin-gonic/gin"
)

// NoticePayload mirrors models.Notice on the wire
type NoticePayload struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

type ErrorResponse struct {
	Error  string        `json:"error"`
	Code   int           `json:"code"`
	Notice NoticePayload `json:"notice"`
}

type NoticeResponse struct {
	Notice NoticePayload `json:"notice"`
	Data   interface{}   `json:"data,omitempty"`
}

type ListResponse struct {
	Data  interface{} `json:"data"`
	Count int         `json:"count"`
	Limit int         `json:"limit"`
}

func SendError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{
		Error:  message,
		Code:   status,
		Notice: NoticePayload{Message: message, Severity: "error"},
	})
}

func SendNotice(c *gin.Context, status int, message, severity string, data interface{}) {
	c.JSON(status, NoticeResponse{
		Notice: NoticePayload{Message: message, Severity: severity},
		Data:   data,
	})
}

func SendData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

func SendList(c *gin.Context, status int, data interface{}, count, limit int) {
	c.JSON(status, ListResponse{
		Data:  data,
		Count: count,
		Limit: limit,
	})
}
