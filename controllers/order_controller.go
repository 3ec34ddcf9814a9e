package controllers

import (
	"strconv"

	"github.com/YibestBelay/shegaCafe/pkg/resp"
	"github.com/YibestBelay/shegaCafe/services"
	"github.com/YibestBelay/shegaCafe/utils"
	"github.com/YibestBelay/shegaCafe/ws"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
	Hub    *ws.OrderHub
}

func NewOrderController(orders *services.OrderService, hub *ws.OrderHub) *OrderController {
	return &OrderController{Orders: orders, Hub: hub}
}

// POST /orders. Guests are allowed, Chef/Admin sessions are rejected.
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Orders.Create(utils.CurrentRole(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}

	ctl.notify()
	resp.Created(c, order)
}

// GET /orders is a public read.
func (ctl *OrderController) List(c *gin.Context) {
	orders, err := ctl.Orders.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// PATCH /orders/:id/status
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Orders.UpdateStatus(utils.CurrentRole(c), uint(id), req.Status); err != nil {
		resp.Error(c, err)
		return
	}

	ctl.notify()
	resp.OK(c, gin.H{"message": "order status updated"})
}

// PATCH /orders/:id/payment
func (ctl *OrderController) UpdatePayment(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		PaymentStatus string `json:"paymentStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Orders.UpdatePaymentStatus(utils.CurrentRole(c), uint(id), req.PaymentStatus); err != nil {
		resp.Error(c, err)
		return
	}

	ctl.notify()
	resp.OK(c, gin.H{"message": "payment status updated"})
}

func (ctl *OrderController) notify() {
	if ctl.Hub != nil {
		go ctl.Hub.NotifyOrdersChanged()
	}
}
