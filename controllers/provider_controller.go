package controllers

import (
	"strconv"

	"github.com/AbuBakkarSiddique007/bhojonbox-server/pkg/resp"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/repository"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProviderController struct {
	DB   *gorm.DB
	Repo *repository.ProviderRepository
}

func NewProviderController(db *gorm.DB, repo *repository.ProviderRepository) *ProviderController {
	return &ProviderController{DB: db, Repo: repo}
}

// GET /api/providers
func (pc *ProviderController) List(c *gin.Context) {
	providers, err := pc.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"providers": providers})
}

// GET /api/providers/:id
func (pc *ProviderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid provider id")
		return
	}

	p, err := pc.Repo.Get(uint(id))
	if err != nil {
		resp.NotFound(c, "provider not found")
		return
	}
	resp.OK(c, gin.H{"provider": p})
}

// PATCH /api/providers/me
func (pc *ProviderController) UpdateMe(c *gin.Context) {
	p, err := pc.Repo.ForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.Forbidden(c, "provider profile required")
		return
	}

	var in struct {
		StoreName   string `json:"storeName"`
		Description string `json:"description"`
		Cuisine     string `json:"cuisine"`
		Logo        string `json:"logo"`
		Address     string `json:"address"`
		Phone       string `json:"phone"`
		IsOpen      *bool  `json:"isOpen"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if in.StoreName != "" {
		p.StoreName = in.StoreName
	}
	if in.Description != "" {
		p.Description = in.Description
	}
	if in.Cuisine != "" {
		p.Cuisine = in.Cuisine
	}
	if in.Logo != "" {
		p.Logo = in.Logo
	}
	if in.Address != "" {
		p.Address = in.Address
	}
	if in.Phone != "" {
		p.Phone = in.Phone
	}
	if in.IsOpen != nil {
		p.IsOpen = *in.IsOpen
	}

	if err := pc.DB.Save(p).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"provider": p})
}
