package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every response uses the {success, message, data?} envelope. Paginated
// listings add page/totalPages/total beside the envelope fields.

func respond(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"success": status < 400, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

func respondPage(c *gin.Context, message string, data interface{}, page, totalPages int, total int64) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    message,
		"data":       data,
		"page":       page,
		"totalPages": totalPages,
		"total":      total,
	})
}

// respondInternal logs the underlying error server-side and returns a
// sanitized 500. Raw error text never reaches the client.
func respondInternal(c *gin.Context, op string, err error) {
	slog.Error(op, "error", err, "path", c.Request.URL.Path)
	respond(c, http.StatusInternalServerError, "Internal server error", nil)
}
