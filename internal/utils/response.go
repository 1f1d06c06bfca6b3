package utils

import "github.com/gin-gonic/gin"

// Error writes the standard failure body. Every error response carries a
// single "error" message field; clients surface it directly.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// Message writes a success body containing only a message.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
