package client

import (
	"github.com/YibestBelay/shegaCafe/entity"
	"github.com/YibestBelay/shegaCafe/services"
)

// LocalAPI backs a Cache with the in-process services.
type LocalAPI struct {
	Menu   *services.MenuService
	Orders *services.OrderService
	Users  *services.UserService
}

func NewLocalAPI(menu *services.MenuService, orders *services.OrderService, users *services.UserService) *LocalAPI {
	return &LocalAPI{Menu: menu, Orders: orders, Users: users}
}

func (a *LocalAPI) GetMenuItems(role string) ([]entity.MenuItem, error) {
	return a.Menu.List(role)
}

func (a *LocalAPI) GetOrders() ([]entity.Order, error) {
	return a.Orders.List()
}

func (a *LocalAPI) GetUsers(role string) ([]entity.User, error) {
	return a.Users.List(role)
}

func (a *LocalAPI) CreateOrder(role, customerName, tableNumber, notes string, items []CartItem, total float64) error {
	in := make([]services.OrderItemIn, 0, len(items))
	for _, it := range items {
		in = append(in, services.OrderItemIn{MenuItemID: it.MenuItemID, Quantity: it.Quantity})
	}
	_, err := a.Orders.Create(role, &services.CreateOrderReq{
		CustomerName: customerName,
		TableNumber:  tableNumber,
		Notes:        notes,
		Items:        in,
		Total:        total,
	})
	return err
}

func (a *LocalAPI) UpdateOrderStatus(role string, orderID uint, status string) error {
	return a.Orders.UpdateStatus(role, orderID, status)
}

func (a *LocalAPI) UpdatePaymentStatus(role string, orderID uint, status string) error {
	return a.Orders.UpdatePaymentStatus(role, orderID, status)
}

func (a *LocalAPI) ClearCompletedOrders(role string) error {
	return a.Orders.ClearCompleted(role)
}
