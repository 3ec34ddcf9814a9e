// Package client holds the connected-client view-model: a mirror of menu,
// orders and users plus the local shopping cart. It is the single source
// of truth for one UI session and refetches everything after mutations.
package client

import (
	"sync"

	"github.com/YibestBelay/shegaCafe/entity"
)

// State of the cache lifecycle. Every Refetch passes through StateLoading.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

// CartItem is a purely local line; nothing is persisted until PlaceOrder.
type CartItem struct {
	MenuItemID uint `json:"menuItemId"`
	Quantity   int  `json:"quantity"`
}

// API is what the cache needs from the backend. The in-process services
// satisfy it directly; a remote HTTP client can stand in for them.
type API interface {
	GetMenuItems(role string) ([]entity.MenuItem, error)
	GetOrders() ([]entity.Order, error)
	GetUsers(role string) ([]entity.User, error)
	CreateOrder(role, customerName, tableNumber, notes string, items []CartItem, total float64) error
	UpdateOrderStatus(role string, orderID uint, status string) error
	UpdatePaymentStatus(role string, orderID uint, status string) error
	ClearCompletedOrders(role string) error
}

// Cache is built for a known role (capability injection) instead of
// re-deriving it from a session side channel on every load.
type Cache struct {
	mu   sync.Mutex
	api  API
	role string

	state     State
	menuItems []entity.MenuItem
	orders    []entity.Order
	users     []entity.User
	cart      []CartItem
}

func NewCache(api API, role string) *Cache {
	return &Cache{api: api, role: entity.NormalizeRole(role)}
}

func (c *Cache) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Cache) MenuItems() []entity.MenuItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.menuItems
}

func (c *Cache) Orders() []entity.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orders
}

func (c *Cache) Users() []entity.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.users
}

func (c *Cache) Cart() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartItem, len(c.cart))
	copy(out, c.cart)
	return out
}

// Refetch reloads menu and orders, and users when the session is Admin.
// It is the sole consistency mechanism after mutations. On failure the
// previous state and data are restored, so callers never see a cache
// stuck in StateLoading.
func (c *Cache) Refetch() error {
	c.mu.Lock()
	prev := c.state
	c.state = StateLoading
	role := c.role
	c.mu.Unlock()

	menu, orders, users, err := c.load(role)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = prev
		return err
	}
	c.menuItems = menu
	c.orders = orders
	c.users = users
	c.state = StateReady
	return nil
}

func (c *Cache) load(role string) ([]entity.MenuItem, []entity.Order, []entity.User, error) {
	menu, err := c.api.GetMenuItems(role)
	if err != nil {
		return nil, nil, nil, err
	}
	orders, err := c.api.GetOrders()
	if err != nil {
		return nil, nil, nil, err
	}
	var users []entity.User
	if role == entity.RoleAdmin {
		users, err = c.api.GetUsers(role)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	return menu, orders, users, nil
}

// ----- Cart (local, no I/O) -----

func (c *Cache) AddToCart(menuItemID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.cart {
		if c.cart[i].MenuItemID == menuItemID {
			c.cart[i].Quantity++
			return
		}
	}
	c.cart = append(c.cart, CartItem{MenuItemID: menuItemID, Quantity: 1})
}

func (c *Cache) RemoveFromCart(menuItemID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.cart {
		if c.cart[i].MenuItemID != menuItemID {
			continue
		}
		if c.cart[i].Quantity <= 1 {
			c.cart = append(c.cart[:i], c.cart[i+1:]...)
		} else {
			c.cart[i].Quantity--
		}
		return
	}
}

func (c *Cache) ClearCart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cart = nil
}

// CartTotal prices the cart from the cached menu.
func (c *Cache) CartTotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, line := range c.cart {
		for _, m := range c.menuItems {
			if m.ID == line.MenuItemID {
				total += m.Price * float64(line.Quantity)
				break
			}
		}
	}
	return total
}

func (c *Cache) CartItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, line := range c.cart {
		n += line.Quantity
	}
	return n
}

// ----- Mutations (server call, then full refetch) -----

// PlaceOrder checks out the cart. On success the cart is cleared and the
// cache refetched; on failure both cart and server state are untouched.
func (c *Cache) PlaceOrder(customerName, tableNumber, notes string) error {
	c.mu.Lock()
	items := make([]CartItem, len(c.cart))
	copy(items, c.cart)
	role := c.role
	c.mu.Unlock()

	if len(items) == 0 {
		return ErrCartEmpty
	}

	if err := c.api.CreateOrder(role, customerName, tableNumber, notes, items, c.CartTotal()); err != nil {
		return err
	}
	c.ClearCart()
	return c.Refetch()
}

func (c *Cache) UpdateOrderStatus(orderID uint, status string) error {
	if err := c.api.UpdateOrderStatus(c.role, orderID, status); err != nil {
		return err
	}
	return c.Refetch()
}

func (c *Cache) UpdatePaymentStatus(orderID uint, status string) error {
	if err := c.api.UpdatePaymentStatus(c.role, orderID, status); err != nil {
		return err
	}
	return c.Refetch()
}

func (c *Cache) ClearSalesData() error {
	if err := c.api.ClearCompletedOrders(c.role); err != nil {
		return err
	}
	return c.Refetch()
}
