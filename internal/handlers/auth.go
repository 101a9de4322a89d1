package handlers

import (
	"net/http"

	"blog_api/internal/service"

	"github.com/gin-gonic/gin"
)

// SignUpRequest is the body of POST /auth/sign-up.
type SignUpRequest struct {
	Username    string `json:"username" binding:"required,min=3" example:"alice"`
	Email       string `json:"email" binding:"required,email" example:"alice@example.com"`
	FirstName   string `json:"first_name" example:"Alice"`
	LastName    string `json:"last_name" example:"Liddell"`
	Password    string `json:"password" binding:"required,min=6" example:"s3cr3t!"`
	Role        string `json:"role" example:"user"`
	PhoneNumber string `json:"phone_number,omitempty" example:"+15550100"`
}

// SignInRequest is the body of POST /auth/sign-in.
type SignInRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
}

// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      SignUpRequest  true  "New user"
// @Success      201   {object}  map[string]int
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]interface{}
// @Router       /auth/sign-up [post]
func (h *Handler) signUp(c *gin.Context) {
	var input SignUpRequest
	if ok := h.bindJSONOrUnprocessable(c, &input); !ok {
		return
	}

	id, err := h.services.SignUp(c.Request.Context(), service.SignUpParams{
		Username:    input.Username,
		Email:       input.Email,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Password:    input.Password,
		Role:        input.Role,
		PhoneNumber: input.PhoneNumber,
	})
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_sign_up_failed", "username", input.Username, "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      SignInRequest  true  "Credentials"
// @Success      200   {object}  TokenResponse
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]interface{}
// @Router       /auth/sign-in [post]
func (h *Handler) signIn(c *gin.Context) {
	var input SignInRequest
	if ok := h.bindJSONOrUnprocessable(c, &input); !ok {
		return
	}

	token, err := h.services.GenerateToken(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_sign_in_failed", "username", input.Username, "err", err)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not validate user."})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}
