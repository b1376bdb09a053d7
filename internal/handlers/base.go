package handlers

import (
	"github.com/gin-gonic/gin"
)

// The JSON envelope is {metadata?, message?, data?} with empty members
// omitted, matching what API clients already consume.

func sendEnvelope(c *gin.Context, code int, data any, message string, metadata any) {
	body := gin.H{}
	if metadata != nil {
		body["metadata"] = metadata
	}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(code, body)
}

// SendSuccess writes a success envelope.
func SendSuccess(c *gin.Context, code int, data any, message string) {
	sendEnvelope(c, code, data, message, nil)
}

// SendSuccessWithMeta writes a success envelope carrying pagination
// metadata.
func SendSuccessWithMeta(c *gin.Context, code int, data any, message string, metadata any) {
	sendEnvelope(c, code, data, message, metadata)
}

// SendError writes a failure envelope holding only the message.
func SendError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
