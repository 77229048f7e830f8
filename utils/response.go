package utils

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MEETT007/Shoe-App-Backend/apperr"
)

// Success writes the success envelope: {"status":"success","data":...}.
func Success(c *gin.Context, status int, data gin.H) {
	body := gin.H{"status": "success"}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(status, body)
}

// Fail converts an engine error into the error envelope. Unexpected errors are
// logged in full and reported to the client as a generic message.
func Fail(c *gin.Context, err error) {
	appErr := apperr.From(err)
	if appErr.Status >= http.StatusInternalServerError {
		log.Printf("internal error: %s %s: %v", c.Request.Method, c.Request.URL.Path, appErr)
	}
	c.JSON(appErr.Status, gin.H{"status": "error", "message": appErr.Message})
}
