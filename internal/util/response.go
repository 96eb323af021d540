package util

import "github.com/gin-gonic/gin"

// Error writes an error body in the {"detail": ...} shape the frontend
// already consumes.
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{"detail": msg})
}
