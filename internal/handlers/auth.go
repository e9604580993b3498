package handlers

import (
	"errors"
	"net/http"

	"stockcast/internal/service"

	"github.com/gin-gonic/gin"
)

// User-facing auth messages; wording fixed by the frontend contract.
const (
	msgUserCreated        = "User created successfully"
	errMsgFieldsRequired  = "Username and password required"
	errMsgUserExists      = "User already exists"
	errMsgBadCredentials  = "Invalid credentials"
	errMsgSignUpInternal  = "failed to create user"
	errMsgSignInInternal  = "failed to sign in"
)

// Single, shared credentials payload for both signup and login.
// Presence is validated in the service so empty fields map to the
// contract's message rather than a binding error.
type authCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  authCredentials  true  "Credentials"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	_, err := h.services.SignUp(input.Username, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_sign_up_failed", "username", input.Username, "err", err)
		}
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": errMsgFieldsRequired})
		case errors.Is(err, service.ErrUserExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": errMsgUserExists})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": errMsgSignUpInternal})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgUserCreated})
}

// @Summary      Log in and receive a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  authCredentials  true  "Credentials"
// @Success      200  {object}  map[string]string  "token"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /login [post]
func (h *Handler) logIn(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.GenerateToken(input.Username, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_log_in_failed", "username", input.Username, "err", err)
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": errMsgBadCredentials})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": errMsgSignInInternal})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
