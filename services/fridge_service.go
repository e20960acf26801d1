package services

import (
	"errors"
	"strings"

	"backend/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type FridgeService struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewFridgeService(db *gorm.DB, log *logrus.Logger) *FridgeService {
	return &FridgeService{db: db, log: log}
}

type ItemView struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type FridgeView struct {
	ID    uint       `json:"id"`
	Name  string     `json:"name"`
	Items []ItemView `json:"items"`
}

// ViewFridge returns the user's default fridge, creating it on first
// access.
func (s *FridgeService) ViewFridge(user *models.User) (*FridgeView, error) {
	fridge, err := s.defaultFridge(s.db, user)
	if err != nil {
		return nil, err
	}

	var items []models.FridgeItem
	if err := s.db.Where("fridge_id = ?", fridge.ID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}

	view := &FridgeView{ID: fridge.ID, Name: fridge.Name, Items: make([]ItemView, 0, len(items))}
	for _, it := range items {
		view.Items = append(view.Items, ItemView{ID: it.ID, Name: it.Name, Quantity: it.Quantity})
	}
	return view, nil
}

// AddItem merges by case-insensitive name: a repeat add increments the
// existing quantity and keeps the first-inserted casing. The lookup and
// branch run inside one transaction so concurrent adds cannot slip a
// duplicate row past the unique (fridge_id, name) index.
func (s *FridgeService) AddItem(user *models.User, name string, quantity int) (*ItemView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Msg: "Item name is required"}
	}
	if quantity < 1 {
		return nil, &ValidationError{Msg: "Quantity must be at least 1"}
	}

	var result models.FridgeItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		fridge, err := s.defaultFridge(tx, user)
		if err != nil {
			return err
		}

		var item models.FridgeItem
		err = tx.Where("fridge_id = ? AND LOWER(name) = LOWER(?)", fridge.ID, name).First(&item).Error
		switch {
		case err == nil:
			item.Quantity += quantity
			if err := tx.Model(&item).Update("quantity", item.Quantity).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.FridgeItem{FridgeID: fridge.ID, Name: name, Quantity: quantity}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		default:
			return err
		}

		result = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID, "item": result.Name}).Debug("fridge item added")
	return &ItemView{ID: result.ID, Name: result.Name, Quantity: result.Quantity}, nil
}

// RemoveItem deletes an item the user owns. Items in other users'
// fridges are indistinguishable from nonexistent ones.
func (s *FridgeService) RemoveItem(user *models.User, itemID uint) error {
	var item models.FridgeItem
	err := s.db.
		Joins("JOIN fridges ON fridges.id = fridge_items.fridge_id").
		Where("fridge_items.id = ? AND fridges.user_id = ?", itemID, user.ID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Msg: "Item not found"}
		}
		return err
	}

	// Hard delete, so re-adding the same name does not trip the unique
	// index on a soft-deleted row.
	return s.db.Unscoped().Delete(&item).Error
}

// ClearFridge empties the default fridge. A user with no fridge yet is
// already empty, which counts as success.
func (s *FridgeService) ClearFridge(user *models.User) error {
	var fridge models.Fridge
	err := s.db.Where("user_id = ? AND name = ?", user.ID, models.DefaultFridgeName).First(&fridge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	return s.db.Unscoped().Where("fridge_id = ?", fridge.ID).Delete(&models.FridgeItem{}).Error
}

// ItemNames lists the item names in the user's default fridge, in
// insertion order. A user with no fridge yet has no items.
func (s *FridgeService) ItemNames(user *models.User) ([]string, error) {
	var fridge models.Fridge
	err := s.db.Where("user_id = ? AND name = ?", user.ID, models.DefaultFridgeName).First(&fridge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	err = s.db.Model(&models.FridgeItem{}).
		Where("fridge_id = ?", fridge.ID).
		Order("id").
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (s *FridgeService) defaultFridge(tx *gorm.DB, user *models.User) (*models.Fridge, error) {
	var fridge models.Fridge
	err := tx.Where(models.Fridge{UserID: user.ID, Name: models.DefaultFridgeName}).FirstOrCreate(&fridge).Error
	if err != nil {
		return nil, err
	}
	return &fridge, nil
}
