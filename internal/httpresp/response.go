package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every success response carries a message plus the payload under its
// entity name, e.g. {"message": "...", "owner": {...}}.

func Entity(c *gin.Context, status int, message, key string, payload any) {
	c.JSON(status, gin.H{
		"message": message,
		key:       payload,
	})
}

func OK(c *gin.Context, message, key string, payload any) {
	Entity(c, http.StatusOK, message, key, payload)
}

func Created(c *gin.Context, message, key string, payload any) {
	Entity(c, http.StatusCreated, message, key, payload)
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}
