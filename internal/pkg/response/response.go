// Package response writes the JSON envelope every endpoint answers with:
// {"success": true, "data": ...} or {"success": false, "error": {"code", "message"}}.
package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pawconnect/internal/flow"
	"pawconnect/internal/storage"
)

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	ErrorWithDetails(c, statusCode, code, message, nil)
}

// ErrorWithDetails is Error plus a details field, omitted when nil.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	body := gin.H{
		"code":    code,
		"message": message,
	}
	if details != nil {
		body["details"] = details
	}
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   body,
	})
}

// FlowError writes the response for errors every page shares: an unmet flow precondition
// becomes a silent redirect, corrupted storage a 500. It reports whether err was handled.
func FlowError(c *gin.Context, err error) bool {
	var perr *flow.PreconditionError
	switch {
	case errors.As(err, &perr):
		log.Printf("flow_redirect page=%s reason=%q to=%s path=%s", perr.Page, perr.Reason, perr.Fallback, c.Request.URL.Path)
		c.Redirect(http.StatusSeeOther, perr.Fallback.Path())
		c.Abort()
		return true
	case errors.Is(err, storage.ErrCorrupted):
		log.Printf("storage_corrupted path=%s error=%q", c.Request.URL.Path, err.Error())
		Error(c, http.StatusInternalServerError, "STORAGE_CORRUPTED", "Stored session data could not be read")
		c.Abort()
		return true
	}
	return false
}

// Internal records err on the context and answers with a generic 500.
func Internal(c *gin.Context, err error, message string) {
	_ = c.Error(err)
	Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", message)
}
