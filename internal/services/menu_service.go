package services

import (
	"errors"

	"foodcourt/internal/apperrors"
	"foodcourt/internal/models"
	"foodcourt/internal/repository"

	"gorm.io/gorm"
)

type CreateMenuItemInput struct {
	Name         string
	Category     string
	Price        float64
	Availability *bool
}

// UpdateMenuItemInput carries a partial update; nil fields keep their
// previous value.
type UpdateMenuItemInput struct {
	Name         *string
	Category     *string
	Price        *float64
	Availability *bool
}

type MenuService interface {
	List(category string, availability *bool) ([]models.MenuItem, error)
	Get(id uint) (*models.MenuItem, error)
	Create(input CreateMenuItemInput) (*models.MenuItem, error)
	Update(id uint, input UpdateMenuItemInput) (*models.MenuItem, error)
	Remove(id uint) error
	ToggleAvailability(id uint) (*models.MenuItem, error)
}

type menuService struct {
	menuRepo repository.MenuRepository
}

func NewMenuService(menuRepo repository.MenuRepository) MenuService {
	return &menuService{menuRepo: menuRepo}
}

func (s *menuService) List(category string, availability *bool) ([]models.MenuItem, error) {
	if category != "" && !models.ValidCategory(category) {
		return nil, apperrors.Validation("invalid category")
	}
	items, err := s.menuRepo.List(category, availability)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return items, nil
}

func (s *menuService) Get(id uint) (*models.MenuItem, error) {
	return s.getItem(id)
}

func (s *menuService) Create(input CreateMenuItemInput) (*models.MenuItem, error) {
	if input.Name == "" {
		return nil, apperrors.Validation("menu item name is required")
	}
	if !models.ValidCategory(input.Category) {
		return nil, apperrors.Validation("invalid category")
	}
	if input.Price < 0 {
		return nil, apperrors.Validation("price cannot be negative")
	}

	// Check if menu item with same name exists
	if _, err := s.menuRepo.GetByName(input.Name); err == nil {
		return nil, apperrors.Conflict("menu item with this name already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal(err)
	}

	availability := true
	if input.Availability != nil {
		availability = *input.Availability
	}

	item := &models.MenuItem{
		Name:         input.Name,
		Category:     input.Category,
		Price:        input.Price,
		Availability: availability,
	}
	if err := s.menuRepo.Create(item); err != nil {
		return nil, apperrors.Internal(err)
	}
	return item, nil
}

func (s *menuService) Update(id uint, input UpdateMenuItemInput) (*models.MenuItem, error) {
	item, err := s.getItem(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperrors.Validation("menu item name is required")
		}
		item.Name = *input.Name
	}
	if input.Category != nil {
		if !models.ValidCategory(*input.Category) {
			return nil, apperrors.Validation("invalid category")
		}
		item.Category = *input.Category
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperrors.Validation("price cannot be negative")
		}
		item.Price = *input.Price
	}
	if input.Availability != nil {
		item.Availability = *input.Availability
	}

	if err := s.menuRepo.Update(item); err != nil {
		return nil, apperrors.Internal(err)
	}
	return item, nil
}

func (s *menuService) Remove(id uint) error {
	if _, err := s.getItem(id); err != nil {
		return err
	}
	if err := s.menuRepo.Delete(id); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

func (s *menuService) ToggleAvailability(id uint) (*models.MenuItem, error) {
	item, err := s.getItem(id)
	if err != nil {
		return nil, err
	}
	item.Availability = !item.Availability
	if err := s.menuRepo.Update(item); err != nil {
		return nil, apperrors.Internal(err)
	}
	return item, nil
}

func (s *menuService) getItem(id uint) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("menu item not found")
		}
		return nil, apperrors.Internal(err)
	}
	return item, nil
}
