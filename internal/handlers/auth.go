package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const sessionHeader = "X-Session-Id"

// Credentials payload shared by sign-in and the admin create_user action.
type authCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// bindJSONOrBadRequest binds the request body into dst, treating an empty body
// as "{}", and writes a 400 JSON on malformed input.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindBodyWith(dst, binding.JSON); err != nil && !isEmptyBody(err) {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.Request.URL.Path, "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBody.Error()})
		return false
	}
	return true
}

// @Summary      Sign in
// @Description  Checks username and password and returns a session token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authCredentials  true  "Credentials"
// @Success      200   {object}  map[string]interface{}  "success, session_token, user_id, username"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth [post]
func (h *Handler) signIn(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	res, err := h.services.Authenticate(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.respondError(c, "auth_sign_in_failed", err, "username", input.Username)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"session_token": res.Token,
		"user_id":       res.UserID,
		"username":      res.Username,
	})
}

// @Summary      Check session
// @Description  Reports whether the X-Session-Id header identifies a session.
// @Tags         auth
// @Produce      json
// @Param        X-Session-Id  header    string  false  "Session token"
// @Success      200           {object}  map[string]bool
// @Failure      401           {object}  map[string]bool
// @Router       /auth [get]
func (h *Handler) checkSession(c *gin.Context) {
	ok, err := h.services.CheckSession(c.Request.Context(), c.GetHeader(sessionHeader))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "auth_check_session_failed", err)
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}
