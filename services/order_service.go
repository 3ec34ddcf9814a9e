package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/YibestBelay/shegaCafe/entity"
	"github.com/YibestBelay/shegaCafe/pkg/apperr"
	"github.com/YibestBelay/shegaCafe/pkg/authz"
	"github.com/YibestBelay/shegaCafe/repository"

	"gorm.io/gorm"
)

// OrderService enforces the order lifecycle: who may create, move, pay and
// delete orders, and how those mutations hit the store.
type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderReq struct {
	CustomerName string        `json:"customerName" binding:"required"`
	TableNumber  string        `json:"tableNumber" binding:"required"`
	Items        []OrderItemIn `json:"items" binding:"required,min=1"`
	Total        float64       `json:"total"`
	Notes        string        `json:"notes"`
}

// Create places a new order. Guests are allowed; Chef and Admin sessions
// are not. The client-supplied total is recomputed from current menu
// prices and rejected on mismatch rather than trusted.
func (s *OrderService) Create(actorRole string, req *CreateOrderReq) (*entity.Order, error) {
	if !authz.Allowed(actorRole, authz.ActionCreateOrder) {
		return nil, apperr.Unauthorized("Chefs & Admins cannot place orders")
	}
	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.TableNumber) == "" {
		return nil, apperr.Validation("customer name and table number are required")
	}
	if len(req.Items) == 0 {
		return nil, apperr.Validation("items is required")
	}

	var total float64
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, apperr.Validation("quantity must be positive")
		}
		m, err := s.Repo.GetMenuBasics(it.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.Validation(fmt.Sprintf("menu item %d not found", it.MenuItemID))
			}
			return nil, apperr.Upstream(err)
		}
		total += m.Price * float64(it.Quantity)
	}
	if math.Abs(total-req.Total) > 0.005 {
		return nil, apperr.Validation("order total does not match current menu prices")
	}

	var created entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			CustomerName:  strings.TrimSpace(req.CustomerName),
			TableNumber:   strings.TrimSpace(req.TableNumber),
			Notes:         req.Notes,
			Total:         total,
			Status:        entity.StatusReceived,
			PaymentStatus: entity.PaymentPending,
			Timestamp:     time.Now(),
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, it := range req.Items {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				Quantity:   it.Quantity,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, apperr.Upstream(err)
	}

	out, err := s.Repo.GetOrderWithItems(created.ID)
	if err != nil {
		return nil, apperr.Upstream(err)
	}
	return out, nil
}

// List is the public read: every order, newest activity first.
func (s *OrderService) List() ([]entity.Order, error) {
	orders, err := s.Repo.ListOrders()
	if err != nil {
		return nil, apperr.Upstream(err)
	}
	return orders, nil
}

// UpdateStatus moves an order to any valid status and refreshes its
// timestamp. No transition graph is enforced; role is the only gate.
func (s *OrderService) UpdateStatus(actorRole string, orderID uint, status string) error {
	if entity.NormalizeRole(actorRole) == entity.RoleGuest {
		return apperr.LoginRequired()
	}
	if !authz.Allowed(actorRole, authz.ActionUpdateOrderStatus) {
		return apperr.Unauthorized("Only Waiter, Chef, or Admin can update status")
	}
	if !entity.IsOrderStatus(status) {
		return apperr.Validation("invalid order status")
	}

	affected, err := s.Repo.UpdateStatus(orderID, status, time.Now())
	if err != nil {
		return apperr.Upstream(err)
	}
	if affected == 0 {
		return apperr.NotFound("order not found")
	}
	return nil
}

// UpdatePaymentStatus sets the payment state only; the order status and
// timestamp stay as they are.
func (s *OrderService) UpdatePaymentStatus(actorRole string, orderID uint, status string) error {
	if entity.NormalizeRole(actorRole) == entity.RoleGuest {
		return apperr.LoginRequired()
	}
	if !authz.Allowed(actorRole, authz.ActionUpdatePaymentStatus) {
		return apperr.Unauthorized("Only Waiter or Admin can update payment")
	}
	if !entity.IsPaymentStatus(status) {
		return apperr.Validation("invalid payment status")
	}

	affected, err := s.Repo.UpdatePaymentStatus(orderID, status)
	if err != nil {
		return apperr.Upstream(err)
	}
	if affected == 0 {
		return apperr.NotFound("order not found")
	}
	return nil
}

// ClearCompleted deletes settled orders (delivered or cancelled, and paid)
// with their items in one transaction.
func (s *OrderService) ClearCompleted(actorRole string) error {
	if !authz.Allowed(actorRole, authz.ActionClearCompletedOrders) {
		return apperr.Unauthorized("Admin only")
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteSettled(tx)
	})
	if err != nil {
		return apperr.Upstream(err)
	}
	return nil
}

// Delete removes a single order and its items.
func (s *OrderService) Delete(actorRole string, orderID uint) error {
	if !authz.Allowed(actorRole, authz.ActionDeleteOrder) {
		return apperr.Unauthorized("Admin only")
	}

	if _, err := s.Repo.GetOrder(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("order not found")
		}
		return apperr.Upstream(err)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteOrderCascade(tx, orderID)
	})
	if err != nil {
		return apperr.Upstream(err)
	}
	return nil
}
