package controllers

import (
	"strconv"

	"github.com/AbuBakkarSiddique007/bhojonbox-server/entity"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/pkg/resp"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB        *gorm.DB
	OrderRepo *repository.OrderRepository
}

func NewAdminController(db *gorm.DB, orderRepo *repository.OrderRepository) *AdminController {
	return &AdminController{DB: db, OrderRepo: orderRepo}
}

// GET /api/admin/users
func (ac *AdminController) Users(c *gin.Context) {
	var users []entity.User
	if err := ac.DB.Order("id").Find(&users).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"users": users})
}

// GET /api/admin/orders?limit=
func (ac *AdminController) Orders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	orders, err := ac.OrderRepo.ListAll(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}
