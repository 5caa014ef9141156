package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The client contract uses a "message" field for every non-payload response;
// internal error detail never reaches the body.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

func BadRequest(c *gin.Context, msg string) { Message(c, http.StatusBadRequest, msg) }
func Forbidden(c *gin.Context, msg string)  { Message(c, http.StatusForbidden, msg) }
func NotFound(c *gin.Context, msg string)   { Message(c, http.StatusNotFound, msg) }
func Internal(c *gin.Context, msg string)   { Message(c, http.StatusInternalServerError, msg) }
