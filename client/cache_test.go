package client

import (
	"errors"
	"testing"

	"github.com/YibestBelay/shegaCafe/entity"
)

// fakeAPI records calls and serves canned data.
type fakeAPI struct {
	menu    []entity.MenuItem
	orders  []entity.Order
	users   []entity.User
	menuErr error

	userCalls   int
	createErr   error
	createCalls int
	lastTotal   float64
	lastItems   []CartItem
}

func (f *fakeAPI) GetMenuItems(role string) ([]entity.MenuItem, error) { return f.menu, f.menuErr }
func (f *fakeAPI) GetOrders() ([]entity.Order, error)                  { return f.orders, nil }

func (f *fakeAPI) GetUsers(role string) ([]entity.User, error) {
	f.userCalls++
	return f.users, nil
}

func (f *fakeAPI) CreateOrder(role, customerName, tableNumber, notes string, items []CartItem, total float64) error {
	f.createCalls++
	f.lastItems = items
	f.lastTotal = total
	return f.createErr
}

func (f *fakeAPI) UpdateOrderStatus(role string, orderID uint, status string) error   { return nil }
func (f *fakeAPI) UpdatePaymentStatus(role string, orderID uint, status string) error { return nil }
func (f *fakeAPI) ClearCompletedOrders(role string) error                             { return nil }

func menuItem(id uint, price float64) entity.MenuItem {
	m := entity.MenuItem{Price: price, IsAvailable: true}
	m.ID = id
	return m
}

func TestCartRoundTrip(t *testing.T) {
	c := NewCache(&fakeAPI{}, "")

	c.AddToCart(7)
	c.AddToCart(7)
	c.RemoveFromCart(7)

	cart := c.Cart()
	if len(cart) != 1 || cart[0].MenuItemID != 7 || cart[0].Quantity != 1 {
		t.Fatalf("cart = %+v, want one line of item 7 qty 1", cart)
	}

	c.RemoveFromCart(7)
	if len(c.Cart()) != 0 {
		t.Fatalf("cart not empty after final remove: %+v", c.Cart())
	}

	// removing an absent item is a no-op
	c.RemoveFromCart(42)
	if len(c.Cart()) != 0 {
		t.Error("remove of absent item changed the cart")
	}
}

func TestCartTotalAndCount(t *testing.T) {
	api := &fakeAPI{menu: []entity.MenuItem{menuItem(1, 10), menuItem(2, 2.5)}}
	c := NewCache(api, "customer")
	if err := c.Refetch(); err != nil {
		t.Fatalf("Refetch: %v", err)
	}

	c.AddToCart(1)
	c.AddToCart(1)
	c.AddToCart(2)

	if got := c.CartTotal(); got != 22.5 {
		t.Errorf("CartTotal = %v, want 22.5", got)
	}
	if got := c.CartItemCount(); got != 3 {
		t.Errorf("CartItemCount = %d, want 3", got)
	}
}

func TestRefetchStates(t *testing.T) {
	api := &fakeAPI{}
	c := NewCache(api, "customer")

	if c.State() != StateUninitialized {
		t.Errorf("initial state = %v, want Uninitialized", c.State())
	}
	if err := c.Refetch(); err != nil {
		t.Fatalf("Refetch: %v", err)
	}
	if c.State() != StateReady {
		t.Errorf("state = %v, want Ready", c.State())
	}
}

func TestRefetchFailureRestoresState(t *testing.T) {
	api := &fakeAPI{menu: []entity.MenuItem{menuItem(1, 10)}}
	c := NewCache(api, "customer")

	api.menuErr = errors.New("backend down")
	if err := c.Refetch(); err == nil {
		t.Fatal("expected Refetch to fail")
	}
	if c.State() != StateUninitialized {
		t.Errorf("state = %v, want Uninitialized after failed first load", c.State())
	}

	api.menuErr = nil
	if err := c.Refetch(); err != nil {
		t.Fatalf("Refetch: %v", err)
	}

	api.menuErr = errors.New("backend down")
	if err := c.Refetch(); err == nil {
		t.Fatal("expected Refetch to fail")
	}
	if c.State() != StateReady {
		t.Errorf("state = %v, want Ready restored after failed reload", c.State())
	}
	if len(c.MenuItems()) != 1 {
		t.Error("cached menu lost on failed reload")
	}
}

func TestRefetchLoadsUsersOnlyForAdmin(t *testing.T) {
	api := &fakeAPI{users: []entity.User{{Name: "A"}}}

	c := NewCache(api, "waiter")
	if err := c.Refetch(); err != nil {
		t.Fatalf("Refetch: %v", err)
	}
	if api.userCalls != 0 || len(c.Users()) != 0 {
		t.Error("non-admin cache fetched users")
	}

	admin := NewCache(api, "Admin")
	if err := admin.Refetch(); err != nil {
		t.Fatalf("Refetch: %v", err)
	}
	if api.userCalls != 1 || len(admin.Users()) != 1 {
		t.Error("admin cache did not fetch users")
	}
}

func TestPlaceOrder(t *testing.T) {
	api := &fakeAPI{menu: []entity.MenuItem{menuItem(1, 10)}}
	c := NewCache(api, "")
	if err := c.Refetch(); err != nil {
		t.Fatalf("Refetch: %v", err)
	}

	if err := c.PlaceOrder("Sara", "3", ""); !errors.Is(err, ErrCartEmpty) {
		t.Errorf("empty cart: err = %v, want ErrCartEmpty", err)
	}

	c.AddToCart(1)
	c.AddToCart(1)
	if err := c.PlaceOrder("Sara", "3", "no berbere"); err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if api.createCalls != 1 {
		t.Fatalf("createCalls = %d, want 1", api.createCalls)
	}
	if api.lastTotal != 20 {
		t.Errorf("total = %v, want 20", api.lastTotal)
	}
	if len(api.lastItems) != 1 || api.lastItems[0].Quantity != 2 {
		t.Errorf("items = %+v", api.lastItems)
	}
	if len(c.Cart()) != 0 {
		t.Error("cart not cleared after successful order")
	}
	if c.State() != StateReady {
		t.Error("cache not refetched after order")
	}
}

func TestPlaceOrderFailureKeepsCart(t *testing.T) {
	api := &fakeAPI{
		menu:      []entity.MenuItem{menuItem(1, 10)},
		createErr: errors.New("Chefs & Admins cannot place orders"),
	}
	c := NewCache(api, "chef")
	if err := c.Refetch(); err != nil {
		t.Fatalf("Refetch: %v", err)
	}

	c.AddToCart(1)
	if err := c.PlaceOrder("Chef", "1", ""); err == nil {
		t.Fatal("expected PlaceOrder to fail")
	}
	if len(c.Cart()) != 1 {
		t.Error("cart lost after failed order")
	}
}
