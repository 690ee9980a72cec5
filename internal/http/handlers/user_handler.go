// README: User handlers for signup/signin/update/signout.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fairgadi/internal/auth"
	"fairgadi/internal/http/middleware"
	"fairgadi/internal/modules/user"
)

type UserHandler struct {
	user   *user.Service
	tokens *auth.Manager
}

func NewUserHandler(svc *user.Service, tokens *auth.Manager) *UserHandler {
	return &UserHandler{user: svc, tokens: tokens}
}

type signUpRequest struct {
	Username  string `json:"username" binding:"required,email"`
	FirstName string `json:"firstname" binding:"required"`
	LastName  string `json:"lastname" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
}

type signInRequest struct {
	Username string `json:"username" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateRequest struct {
	FirstName *string `json:"firstname"`
	LastName  *string `json:"lastname"`
	Password  *string `json:"password"`
}

type tokenResponse struct {
	Message string `json:"message,omitempty"`
	Token   string `json:"token"`
}

func (h *UserHandler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "incorrect inputs")
		return
	}
	u, err := h.user.SignUp(c.Request.Context(), user.SignUpCommand{
		Email:     req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		writeUserError(c, err)
		return
	}
	token, err := h.tokens.Issue(c.Request.Context(), u.ID)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusCreated, tokenResponse{Message: "user created successfully", Token: token})
}

func (h *UserHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "incorrect inputs")
		return
	}
	u, err := h.user.SignIn(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeUserError(c, err)
		return
	}
	token, err := h.tokens.Issue(c.Request.Context(), u.ID)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, tokenResponse{Token: token})
}

// Update applies a partial profile update for the authenticated user.
func (h *UserHandler) Update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "error while updating information")
		return
	}
	err := h.user.Update(c.Request.Context(), user.UpdateCommand{
		UserID:    middleware.UserID(c),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		writeUserError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"message": "updated the details successfully"})
}

// SignOut revokes the caller's session; the presented token stops working
// immediately.
func (h *UserHandler) SignOut(c *gin.Context) {
	if err := h.tokens.Revoke(c.Request.Context(), middleware.SessionID(c)); err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"message": "signed out"})
}
