package services

import (
	"errors"
	"fmt"
	"time"

	"foodcourt/internal/apperrors"
	"foodcourt/internal/models"
	"foodcourt/internal/repository"

	"gorm.io/gorm"
)

// OrderLine is one requested (menu item, quantity) pair.
type OrderLine struct {
	MenuItemID uint
	Quantity   int
}

type OrderService interface {
	Create(userID uint, lines []OrderLine) (*models.Order, error)
	ListForUser(callerID uint, isAdmin bool) ([]models.Order, error)
	Get(orderID, callerID uint, isAdmin bool) (*models.Order, error)
	UpdateStatus(orderID uint, status string, isAdmin bool) (*models.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	menuRepo  repository.MenuRepository
}

func NewOrderService(orderRepo repository.OrderRepository, menuRepo repository.MenuRepository) OrderService {
	return &orderService{orderRepo: orderRepo, menuRepo: menuRepo}
}

// Create resolves every line against the current menu, snapshots name and
// unit price into the order items and persists the order as a single write.
// Nothing is persisted when any line fails validation.
func (s *orderService) Create(userID uint, lines []OrderLine) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, apperrors.Validation("order must contain at least one item")
	}

	var totalAmount float64
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, apperrors.Validation("quantity must be at least 1")
		}

		menuItem, err := s.menuRepo.GetByID(line.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.Validation(fmt.Sprintf("menu item with id %d not found", line.MenuItemID))
			}
			return nil, apperrors.Internal(err)
		}
		if !menuItem.Availability {
			return nil, apperrors.Conflict(fmt.Sprintf("%s is currently unavailable", menuItem.Name))
		}

		totalAmount += menuItem.Price * float64(line.Quantity)
		items = append(items, models.OrderItem{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			UnitPrice:  menuItem.Price,
			Quantity:   line.Quantity,
		})
	}

	order := &models.Order{
		UserID:      userID,
		Items:       items,
		TotalAmount: totalAmount,
		Status:      string(models.StatusPending),
		OrderedAt:   time.Now(),
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, apperrors.Internal(err)
	}
	return order, nil
}

// ListForUser returns the caller's orders, or every order in the system when
// the caller is an admin. Both are newest first.
func (s *orderService) ListForUser(callerID uint, isAdmin bool) ([]models.Order, error) {
	var (
		orders []models.Order
		err    error
	)
	if isAdmin {
		orders, err = s.orderRepo.GetAll()
	} else {
		orders, err = s.orderRepo.GetByUserID(callerID)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return orders, nil
}

func (s *orderService) Get(orderID, callerID uint, isAdmin bool) (*models.Order, error) {
	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && order.UserID != callerID {
		return nil, apperrors.Forbidden("not authorized to access this order")
	}
	return order, nil
}

// UpdateStatus moves an order along its lifecycle. Transitions outside the
// table in models are rejected and leave the stored status untouched.
func (s *orderService) UpdateStatus(orderID uint, status string, isAdmin bool) (*models.Order, error) {
	if !isAdmin {
		return nil, apperrors.Forbidden("admin access required")
	}
	if !models.ValidStatus(status) {
		return nil, apperrors.Validation("invalid status")
	}

	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !models.ValidStatusTransition(order.Status, status) {
		return nil, apperrors.Validation(fmt.Sprintf("cannot move order from %s to %s", order.Status, status))
	}

	if err := s.orderRepo.UpdateStatus(orderID, status); err != nil {
		return nil, apperrors.Internal(err)
	}
	order.Status = status
	return order, nil
}

func (s *orderService) getOrder(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("order not found")
		}
		return nil, apperrors.Internal(err)
	}
	return order, nil
}
