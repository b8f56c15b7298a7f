package controllers

import (
	"strconv"

	"github.com/AbuBakkarSiddique007/bhojonbox-server/entity"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct{ DB *gorm.DB }

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

// GET /api/categories
func (cc *CategoryController) List(c *gin.Context) {
	var categories []entity.Category
	if err := cc.DB.Order("name").Find(&categories).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": categories})
}

// POST /api/categories (admin)
func (cc *CategoryController) Create(c *gin.Context) {
	var in struct {
		Name  string `json:"name" binding:"required"`
		Image string `json:"image"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat := entity.Category{Name: in.Name, Image: in.Image}
	if err := cc.DB.Create(&cat).Error; err != nil {
		resp.BadRequest(c, "category already exists")
		return
	}
	resp.Created(c, gin.H{"category": cat})
}

// PUT /api/categories/:id (admin)
func (cc *CategoryController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}

	var cat entity.Category
	if err := cc.DB.First(&cat, id).Error; err != nil {
		resp.NotFound(c, "category not found")
		return
	}

	var in struct {
		Name  string `json:"name"`
		Image string `json:"image"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if in.Name != "" {
		cat.Name = in.Name
	}
	if in.Image != "" {
		cat.Image = in.Image
	}

	if err := cc.DB.Save(&cat).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"category": cat})
}

// DELETE /api/categories/:id (admin)
func (cc *CategoryController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}

	res := cc.DB.Delete(&entity.Category{}, id)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "category not found")
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
