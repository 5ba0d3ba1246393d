package services

import (
	"context"
	"errors"
	"strconv"

	"foodcourt/internal/apperrors"
	"foodcourt/internal/cart"
	"foodcourt/internal/models"
	"foodcourt/internal/repository"

	"gorm.io/gorm"
)

// CartService keeps each user's pending cart in the cart store. Every
// mutation loads the current state, runs the reducer and saves the result;
// concurrent writers converge on the last write.
type CartService interface {
	Get(ctx context.Context, userID uint) (cart.State, error)
	AddItem(ctx context.Context, userID, menuItemID uint) (cart.State, error)
	RemoveItem(ctx context.Context, userID, itemID uint) (cart.State, error)
	SetQuantity(ctx context.Context, userID, itemID uint, quantity int) (cart.State, error)
	Clear(ctx context.Context, userID uint) (cart.State, error)
	Checkout(ctx context.Context, userID uint) (*models.Order, error)
}

type cartService struct {
	store        cart.Store
	menuRepo     repository.MenuRepository
	orderService OrderService
}

func NewCartService(store cart.Store, menuRepo repository.MenuRepository, orderService OrderService) CartService {
	return &cartService{store: store, menuRepo: menuRepo, orderService: orderService}
}

func cartKeyForUser(userID uint) string {
	return "user:" + strconv.FormatUint(uint64(userID), 10)
}

func (s *cartService) Get(ctx context.Context, userID uint) (cart.State, error) {
	state, _, err := s.store.Load(ctx, cartKeyForUser(userID))
	if err != nil {
		return cart.Empty(), apperrors.Internal(err)
	}
	return state, nil
}

func (s *cartService) AddItem(ctx context.Context, userID, menuItemID uint) (cart.State, error) {
	menuItem, err := s.menuRepo.GetByID(menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cart.Empty(), apperrors.NotFound("menu item not found")
		}
		return cart.Empty(), apperrors.Internal(err)
	}
	if !menuItem.Availability {
		return cart.Empty(), apperrors.Conflict(menuItem.Name + " is currently unavailable")
	}

	return s.apply(ctx, userID, func(state cart.State) cart.State {
		return cart.Add(state, cart.Item{ID: menuItem.ID, Name: menuItem.Name, Price: menuItem.Price})
	})
}

func (s *cartService) RemoveItem(ctx context.Context, userID, itemID uint) (cart.State, error) {
	return s.apply(ctx, userID, func(state cart.State) cart.State {
		return cart.Remove(state, itemID)
	})
}

func (s *cartService) SetQuantity(ctx context.Context, userID, itemID uint, quantity int) (cart.State, error) {
	return s.apply(ctx, userID, func(state cart.State) cart.State {
		return cart.SetQuantity(state, itemID, quantity)
	})
}

func (s *cartService) Clear(ctx context.Context, userID uint) (cart.State, error) {
	return s.apply(ctx, userID, cart.Clear)
}

// Checkout submits the pending cart as an order and clears the cart on
// success. Checkout is simulated: no payment is taken.
func (s *cartService) Checkout(ctx context.Context, userID uint) (*models.Order, error) {
	key := cartKeyForUser(userID)
	state, _, err := s.store.Load(ctx, key)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if len(state.Items) == 0 {
		return nil, apperrors.Validation("cart is empty")
	}

	lines := make([]OrderLine, 0, len(state.Items))
	for _, item := range state.Items {
		lines = append(lines, OrderLine{MenuItemID: item.ID, Quantity: item.Quantity})
	}

	order, err := s.orderService.Create(userID, lines)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, key, cart.Empty()); err != nil {
		return nil, apperrors.Internal(err)
	}
	return order, nil
}

func (s *cartService) apply(ctx context.Context, userID uint, transition func(cart.State) cart.State) (cart.State, error) {
	key := cartKeyForUser(userID)
	state, _, err := s.store.Load(ctx, key)
	if err != nil {
		return cart.Empty(), apperrors.Internal(err)
	}

	next := transition(state)
	if err := s.store.Save(ctx, key, next); err != nil {
		return cart.Empty(), apperrors.Internal(err)
	}
	return next, nil
}
