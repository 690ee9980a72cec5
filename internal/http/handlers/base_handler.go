// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fairgadi/internal/modules/user"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeErrorDetails(c *gin.Context, status int, msg, details string) {
	writeJSON(c, status, errorResponse{Error: msg, Details: details})
}

func writeUserError(c *gin.Context, err error) {
	switch err {
	case user.ErrBadRequest:
		writeError(c, http.StatusBadRequest, err.Error())
	case user.ErrEmailTaken:
		writeError(c, http.StatusConflict, err.Error())
	case user.ErrInvalidCredentials:
		writeError(c, http.StatusUnauthorized, err.Error())
	case user.ErrNotFound:
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
