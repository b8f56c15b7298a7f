package controllers

import (
	"strconv"

	"github.com/AbuBakkarSiddique007/bhojonbox-server/entity"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/pkg/resp"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/repository"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MealController struct {
	DB           *gorm.DB
	Repo         *repository.MealRepository
	ProviderRepo *repository.ProviderRepository
}

func NewMealController(db *gorm.DB, repo *repository.MealRepository, providerRepo *repository.ProviderRepository) *MealController {
	return &MealController{DB: db, Repo: repo, ProviderRepo: providerRepo}
}

// GET /api/meals?page=&limit=&search=&category=&provider=&minPrice=&maxPrice=
func (mc *MealController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	f := repository.MealFilters{
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}
	if v, err := strconv.ParseUint(c.Query("category"), 10, 32); err == nil {
		f.CategoryID = uint(v)
	}
	if v, err := strconv.ParseUint(c.Query("provider"), 10, 32); err == nil {
		f.ProviderID = uint(v)
	}
	if v, err := strconv.ParseInt(c.Query("minPrice"), 10, 64); err == nil {
		f.MinPrice = &v
	}
	if v, err := strconv.ParseInt(c.Query("maxPrice"), 10, 64); err == nil {
		f.MaxPrice = &v
	}

	meals, total, err := mc.Repo.List(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	pages := (total + int64(f.Limit) - 1) / int64(f.Limit)
	if pages < 1 {
		pages = 1
	}
	resp.OK(c, gin.H{
		"meals": meals,
		"pagination": gin.H{
			"page": f.Page, "limit": f.Limit, "total": total, "pages": pages,
		},
	})
}

// GET /api/meals/:id
func (mc *MealController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid meal id")
		return
	}

	m, err := mc.Repo.Get(uint(id))
	if err != nil {
		resp.NotFound(c, "meal not found")
		return
	}
	resp.OK(c, gin.H{"meal": m})
}

// GET /api/meals/provider/my-meals
func (mc *MealController) MyMeals(c *gin.Context) {
	p, err := mc.ProviderRepo.ForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.Forbidden(c, "provider profile required")
		return
	}

	meals, err := mc.Repo.ListForProvider(p.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"meals": meals})
}

type MealIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,min=1"`
	Image       string `json:"image"`
	CategoryID  uint   `json:"categoryId"`
	Available   *bool  `json:"available"`
}

// POST /api/meals
func (mc *MealController) Create(c *gin.Context) {
	p, err := mc.ProviderRepo.ForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.Forbidden(c, "provider profile required")
		return
	}

	var in MealIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	m := entity.Meal{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		CategoryID:  in.CategoryID,
		ProviderID:  p.ID,
		Available:   true,
	}
	if in.Available != nil {
		m.Available = *in.Available
	}
	if err := mc.DB.Create(&m).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"meal": m})
}

// PATCH /api/meals/:id
func (mc *MealController) Update(c *gin.Context) {
	p, err := mc.ProviderRepo.ForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.Forbidden(c, "provider profile required")
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid meal id")
		return
	}

	var m entity.Meal
	if err := mc.DB.Where("id = ? AND provider_id = ?", id, p.ID).First(&m).Error; err != nil {
		resp.NotFound(c, "meal not found")
		return
	}

	var in struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Price       *int64 `json:"price"`
		Image       string `json:"image"`
		CategoryID  *uint  `json:"categoryId"`
		Available   *bool  `json:"available"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if in.Name != "" {
		m.Name = in.Name
	}
	if in.Description != "" {
		m.Description = in.Description
	}
	if in.Price != nil && *in.Price > 0 {
		m.Price = *in.Price
	}
	if in.Image != "" {
		m.Image = in.Image
	}
	if in.CategoryID != nil {
		m.CategoryID = *in.CategoryID
	}
	if in.Available != nil {
		m.Available = *in.Available
	}

	if err := mc.DB.Save(&m).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"meal": m})
}

// DELETE /api/meals/:id
func (mc *MealController) Delete(c *gin.Context) {
	p, err := mc.ProviderRepo.ForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.Forbidden(c, "provider profile required")
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid meal id")
		return
	}

	res := mc.DB.Where("id = ? AND provider_id = ?", id, p.ID).Delete(&entity.Meal{})
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "meal not found")
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
