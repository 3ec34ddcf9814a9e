package controllers

import (
	"github.com/YibestBelay/shegaCafe/pkg/resp"
	"github.com/YibestBelay/shegaCafe/services"
	"github.com/YibestBelay/shegaCafe/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// POST /auth/register
func (ctl *AuthController) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.Auth.Register(req.Name, req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, user)
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ctl.Auth.Login(req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

type externalLoginReq struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required,email"`
}

// POST /auth/external completes a sign-in from an external identity
// provider. First-time emails are registered as customers.
func (ctl *AuthController) ExternalLogin(c *gin.Context) {
	var req externalLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ctl.Auth.ExternalLogin(req.Name, req.Email)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /auth/me
func (ctl *AuthController) Me(c *gin.Context) {
	user, err := ctl.Auth.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}
