package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/svidal/rutinas-api/internal/auth"
)

type AuthController struct {
	service *auth.Service
}

func NewAuthController(service *auth.Service) *AuthController {
	return &AuthController{service: service}
}

// TokenResponse is the credential issued on a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates a new user
// POST /register
func (ac *AuthController) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "username y password son obligatorios")
		return
	}

	user, err := ac.service.Register(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserExists):
			respondBadRequest(c, "Usuario ya existe")
		case errors.Is(err, auth.ErrPasswordTooShort), errors.Is(err, auth.ErrPasswordTooLong):
			respondBadRequest(c, err.Error())
		default:
			respondInternalError(c, err, "register user")
		}
		return
	}

	// The entity serializes without its password hash
	respondCreated(c, user)
}

// Token exchanges form credentials for a signed bearer token
// POST /token
func (ac *AuthController) Token(c *gin.Context) {
	var req struct {
		Username string `form:"username" binding:"required"`
		Password string `form:"password" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "username y password son obligatorios")
		return
	}

	token, err := ac.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrCredencialesInvalidas) {
			respondUnauthorized(c, "Credenciales incorrectas")
			return
		}
		respondInternalError(c, err, "login")
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
