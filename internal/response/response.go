package response

import "github.com/gin-gonic/gin"

// Envelope is the uniform wire shape of every API response.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Ok builds a successful envelope.
func Ok(message string, data interface{}) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

// Fail builds a failed envelope with no data.
func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

// JSON writes an envelope with the given HTTP status.
func JSON(c *gin.Context, statusCode int, env Envelope) {
	c.JSON(statusCode, env)
}

// Error writes a failure envelope with the given HTTP status.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Fail(message))
}
