package controllers

import (
	"strconv"

	"github.com/AbuBakkarSiddique007/bhojonbox-server/entity"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/pkg/resp"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewController struct{ DB *gorm.DB }

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

// POST /api/reviews. A customer may review a meal from their own
// delivered order, once per meal per order.
func (rc *ReviewController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var in struct {
		MealID  uint   `json:"mealId" binding:"required"`
		OrderID uint   `json:"orderId" binding:"required"`
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var order entity.Order
	if err := rc.DB.Where("id = ? AND user_id = ?", in.OrderID, uid).First(&order).Error; err != nil {
		resp.NotFound(c, "order not found")
		return
	}
	if order.Status != entity.StatusDelivered {
		resp.BadRequest(c, "only delivered orders can be reviewed")
		return
	}

	var inOrder int64
	rc.DB.Model(&entity.OrderItem{}).
		Where("order_id = ? AND meal_id = ?", in.OrderID, in.MealID).
		Count(&inOrder)
	if inOrder == 0 {
		resp.BadRequest(c, "meal is not part of this order")
		return
	}

	var dup int64
	rc.DB.Model(&entity.Review{}).
		Where("user_id = ? AND order_id = ? AND meal_id = ?", uid, in.OrderID, in.MealID).
		Count(&dup)
	if dup > 0 {
		resp.Conflict(c, "meal already reviewed for this order")
		return
	}

	review := entity.Review{
		Rating:  in.Rating,
		Comment: in.Comment,
		UserID:  uid,
		MealID:  in.MealID,
		OrderID: in.OrderID,
	}
	if err := rc.DB.Create(&review).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"review": review})
}

// GET /api/reviews/meal/:mealId
func (rc *ReviewController) ByMeal(c *gin.Context) {
	mealID, err := strconv.ParseUint(c.Param("mealId"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid meal id")
		return
	}

	var reviews []entity.Review
	if err := rc.DB.Where("meal_id = ?", mealID).Order("id DESC").Find(&reviews).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"reviews": reviews})
}

// GET /api/reviews/user/my-reviews
func (rc *ReviewController) MyReviews(c *gin.Context) {
	var reviews []entity.Review
	if err := rc.DB.Where("user_id = ?", utils.CurrentUserID(c)).Order("id DESC").Find(&reviews).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"reviews": reviews})
}
