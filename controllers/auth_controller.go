package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/AbuBakkarSiddique007/bhojonbox-server/configs"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/entity"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/middlewares"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/pkg/resp"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Role     string `json:"role" binding:"omitempty,oneof=CUSTOMER PROVIDER"`

	// provider signup details, used when Role is PROVIDER
	StoreName string `json:"storeName"`
	Cuisine   string `json:"cuisine"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// POST /api/auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	email := strings.ToLower(req.Email)
	var exist entity.User
	if err := a.DB.Where("email = ?", email).First(&exist).Error; err == nil {
		resp.BadRequest(c, "email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	role := req.Role
	if role == "" {
		role = entity.RoleCustomer
	}

	user := entity.User{
		Email:    email,
		Password: string(hashed),
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     role,
	}

	err = a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if role == entity.RoleProvider {
			storeName := req.StoreName
			if storeName == "" {
				storeName = req.Name
			}
			p := entity.Provider{
				StoreName: storeName,
				Cuisine:   req.Cuisine,
				Address:   req.Address,
				Phone:     req.Phone,
				UserID:    user.ID,
			}
			return tx.Create(&p).Error
		}
		return nil
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{
		"id": user.ID, "email": user.Email, "name": user.Name, "role": user.Role,
	})
}

// POST /api/auth/login sets the session cookie the browser client relies on.
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var user entity.User
	if err := a.DB.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role, a.Cfg.JWTSecret, a.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.TokenCookie, token, int(a.Cfg.JWTTTL/time.Second), "/", "", false, true)

	resp.OK(c, gin.H{
		"token": token,
		"user": gin.H{
			"id": user.ID, "email": user.Email, "name": user.Name, "role": user.Role,
		},
	})
}

// POST /api/auth/logout clears the cookie. The cart record is left alone:
// the selection survives the session on purpose.
func (a *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.TokenCookie, "", -1, "/", "", false, true)
	resp.OK(c, gin.H{"loggedOut": true})
}

// GET /api/auth/me
func (a *AuthController) Me(c *gin.Context) {
	var user entity.User
	if err := a.DB.First(&user, utils.CurrentUserID(c)).Error; err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, gin.H{
		"id": user.ID, "email": user.Email, "name": user.Name,
		"phone": user.Phone, "address": user.Address, "role": user.Role,
	})
}

// PATCH /api/auth/me
func (a *AuthController) UpdateMe(c *gin.Context) {
	var body struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var user entity.User
	if err := a.DB.First(&user, utils.CurrentUserID(c)).Error; err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	if body.Name != "" {
		user.Name = body.Name
	}
	if body.Phone != "" {
		user.Phone = body.Phone
	}
	if body.Address != "" {
		user.Address = body.Address
	}
	if err := a.DB.Save(&user).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"id": user.ID, "email": user.Email, "name": user.Name,
		"phone": user.Phone, "address": user.Address, "role": user.Role,
	})
}
