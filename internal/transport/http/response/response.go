// Package response writes the API's JSON envelope. Every body carries
// a success flag; failures add a human-readable message.
package response

import "github.com/gin-gonic/gin"

func OK(c *gin.Context, data gin.H) {
	write(c, 200, data)
}

func Created(c *gin.Context, data gin.H) {
	write(c, 201, data)
}

func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{
		"success": false,
		"message": message,
	})
}

func write(c *gin.Context, httpStatus int, data gin.H) {
	payload := gin.H{"success": true}
	for key, value := range data {
		payload[key] = value
	}
	c.JSON(httpStatus, payload)
}
