package controllers

import (
	"errors"
	"strconv"

	"github.com/AbuBakkarSiddique007/bhojonbox-server/entity"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/pkg/resp"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/services"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /api/orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"order": order})
}

// GET /api/orders/my-orders
func (oc *OrderController) MyOrders(c *gin.Context) {
	orders, err := oc.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /api/orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := oc.Svc.DetailForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"order": order})
}

// PATCH /api/orders/:id/cancel. Customer side exit, allowed from PLACED only.
func (oc *OrderController) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := oc.Svc.Cancel(utils.CurrentUserID(c), uint(id))
	if err != nil {
		oc.transitionError(c, err)
		return
	}
	resp.OK(c, gin.H{"order": order})
}

// PATCH /api/orders/:id/status. The provider advances one step; the body's
// status must match the transition table's next status.
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !entity.ValidStatus(body.Status) {
		resp.BadRequest(c, "unknown status: "+body.Status)
		return
	}

	order, err := oc.Svc.Advance(utils.CurrentUserID(c), uint(id), body.Status)
	if err != nil {
		oc.transitionError(c, err)
		return
	}
	resp.OK(c, gin.H{"order": order})
}

// GET /api/orders/provider/orders
func (oc *OrderController) ProviderOrders(c *gin.Context) {
	orders, err := oc.Svc.ListForProvider(utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			resp.Forbidden(c, "provider profile required")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

func (oc *OrderController) transitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "order not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case errors.Is(err, services.ErrTerminalStatus),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrNotCancellable):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
