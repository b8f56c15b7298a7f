package controllers

import (
	"strconv"

	"github.com/AbuBakkarSiddique007/bhojonbox-server/entity"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/pkg/resp"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/repository"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/services"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Svc      *services.CartService
	MealRepo *repository.MealRepository
}

func NewCartController(svc *services.CartService, mealRepo *repository.MealRepository) *CartController {
	return &CartController{Svc: svc, MealRepo: mealRepo}
}

func cartPayload(lines []entity.CartLine) gin.H {
	var subtotal int64
	for _, l := range lines {
		subtotal += l.Price * int64(l.Qty)
	}
	return gin.H{"items": lines, "subtotal": subtotal}
}

// GET /api/cart
func (h *CartController) Get(c *gin.Context) {
	resp.OK(c, cartPayload(h.Svc.Read(utils.CurrentUserID(c))))
}

// POST /api/cart/items adds one unit of a meal. The display snapshot
// (name, price, image, provider) is taken from the catalog now and kept
// as-is on the line afterward.
func (h *CartController) Add(c *gin.Context) {
	var body struct {
		MealID uint `json:"mealId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	m, err := h.MealRepo.GetBasics(body.MealID)
	if err != nil {
		resp.NotFound(c, "meal not found")
		return
	}
	if !m.Available {
		resp.BadRequest(c, "meal is not available")
		return
	}

	lines := h.Svc.Add(utils.CurrentUserID(c), entity.CartLine{
		MealID:     m.ID,
		ProviderID: m.ProviderID,
		Name:       m.Name,
		Price:      m.Price,
		Image:      m.Image,
	})
	resp.OK(c, cartPayload(lines))
}

// PATCH /api/cart/items/:mealId
func (h *CartController) UpdateQty(c *gin.Context) {
	mealID, err := strconv.ParseUint(c.Param("mealId"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid meal id")
		return
	}

	var body struct {
		Qty int `json:"qty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		// non-numeric input floors to 1, same as the old quantity field
		body.Qty = 1
	}

	lines := h.Svc.UpdateQty(utils.CurrentUserID(c), uint(mealID), body.Qty)
	resp.OK(c, cartPayload(lines))
}

// DELETE /api/cart/items/:mealId
func (h *CartController) Remove(c *gin.Context) {
	mealID, err := strconv.ParseUint(c.Param("mealId"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid meal id")
		return
	}

	lines := h.Svc.Remove(utils.CurrentUserID(c), uint(mealID))
	resp.OK(c, cartPayload(lines))
}

// DELETE /api/cart/provider/:providerId drops one seller group. Provider id
// 0 clears the unknown bucket.
func (h *CartController) ClearProvider(c *gin.Context) {
	providerID, err := strconv.ParseUint(c.Param("providerId"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid provider id")
		return
	}

	lines := h.Svc.ClearForProvider(utils.CurrentUserID(c), uint(providerID))
	resp.OK(c, cartPayload(lines))
}
