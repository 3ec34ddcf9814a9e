package controllers

import (
	"net/http"
	"strconv"

	"github.com/YibestBelay/shegaCafe/pkg/resp"
	"github.com/YibestBelay/shegaCafe/services"
	"github.com/YibestBelay/shegaCafe/utils"
	"github.com/YibestBelay/shegaCafe/ws"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Users   *services.UserService
	Orders  *services.OrderService
	Reports *services.ReportService
	Hub     *ws.OrderHub
}

func NewAdminController(users *services.UserService, orders *services.OrderService, reports *services.ReportService, hub *ws.OrderHub) *AdminController {
	return &AdminController{Users: users, Orders: orders, Reports: reports, Hub: hub}
}

// GET /admin/users
func (ctl *AdminController) ListUsers(c *gin.Context) {
	users, err := ctl.Users.List(utils.CurrentRole(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users})
}

// POST /admin/users adds a user, or updates an existing user's role.
func (ctl *AdminController) SaveUser(c *gin.Context) {
	var req services.SaveUserIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.Users.AddOrUpdate(utils.CurrentRole(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

// DELETE /admin/users/:id
func (ctl *AdminController) DeleteUser(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	err := ctl.Users.Delete(utils.CurrentRole(c), utils.CurrentUserID(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "user deleted"})
}

// DELETE /admin/orders/:id
func (ctl *AdminController) DeleteOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Orders.Delete(utils.CurrentRole(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}

	ctl.notify()
	resp.OK(c, gin.H{"message": "order deleted"})
}

// POST /admin/orders/clear-completed
func (ctl *AdminController) ClearCompletedOrders(c *gin.Context) {
	if err := ctl.Orders.ClearCompleted(utils.CurrentRole(c)); err != nil {
		resp.Error(c, err)
		return
	}

	ctl.notify()
	resp.OK(c, gin.H{"message": "completed orders cleared"})
}

// GET /admin/reports/sales streams the spreadsheet download.
func (ctl *AdminController) SalesReport(c *gin.Context) {
	data, err := ctl.Reports.SalesReport(utils.CurrentRole(c))
	if err != nil {
		resp.Error(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=sales-report.xlsx")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (ctl *AdminController) notify() {
	if ctl.Hub != nil {
		go ctl.Hub.NotifyOrdersChanged()
	}
}
