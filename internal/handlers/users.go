package handlers

import (
	"errors"
	"net/http"

	"blog_api/internal/service"

	"github.com/gin-gonic/gin"
)

// PasswordChangeRequest is the body of PUT /users/password.
type PasswordChangeRequest struct {
	Password    string `json:"password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// @Summary      Current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/ [get]
// @Security     BearerAuth
func (h *Handler) getUser(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	u, err := h.services.Users.Me(c.Request.Context(), caller)
	if err != nil {
		h.userError(c, err, "user_get_failed", caller.ID)
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      Change password
// @Tags         users
// @Accept       json
// @Param        body  body  PasswordChangeRequest  true  "Current and new password"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]interface{}
// @Router       /users/password [put]
// @Security     BearerAuth
func (h *Handler) changePassword(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req PasswordChangeRequest
	if !h.bindJSONOrUnprocessable(c, &req) {
		return
	}
	err := h.services.Users.ChangePassword(c.Request.Context(), caller, req.Password, req.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Error on password change"})
			return
		}
		h.userError(c, err, "user_password_change_failed", caller.ID)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Change phone number
// @Tags         users
// @Param        phone_number  path  string  true  "New phone number"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/phonenumber/{phone_number} [put]
// @Security     BearerAuth
func (h *Handler) changePhoneNumber(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	phone := c.Param("phone_number")
	if err := h.services.Users.ChangePhoneNumber(c.Request.Context(), caller, phone); err != nil {
		h.userError(c, err, "user_phone_change_failed", caller.ID)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) userError(c *gin.Context, err error, logKey string, userID uint) {
	if errors.Is(err, service.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": errUserNotFound})
		return
	}
	h.logAndJSONError(c, http.StatusInternalServerError, errInternal, logKey, err, "user_id", userID)
}
