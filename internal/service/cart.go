package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/dkotelnikov/shop-backend/internal/models"
	"github.com/dkotelnikov/shop-backend/internal/repo"
)

// legacySlots is the size of the dense vector the original clients expect
// from getcart. The cart itself is stored sparse, keyed by product id.
const legacySlots = 3000

type CartService struct {
	Repo *repo.GormRepo
}

func (s *CartService) Get(ctx context.Context, userID uint) (models.CartData, error) {
	user, err := s.Repo.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	return user.Cart, nil
}

// Add increments the quantity for the product. The item must exist in the
// catalog; the original accepted any index and stored garbage slots.
func (s *CartService) Add(ctx context.Context, userID, itemID uint) error {
	exists, err := s.Repo.ProductExists(ctx, itemID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("product %d: %w", itemID, ErrNotFound)
	}

	_, err = s.Repo.MutateCart(ctx, userID, func(cart models.CartData) models.CartData {
		if cart == nil {
			cart = models.CartData{}
		}
		cart[slotKey(itemID)]++
		return cart
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	return err
}

// Remove decrements the quantity, never below zero. Removing a slot that is
// already empty succeeds without changing anything. The catalog is not
// consulted here: a product deleted after it was added must stay removable.
func (s *CartService) Remove(ctx context.Context, userID, itemID uint) error {
	_, err := s.Repo.MutateCart(ctx, userID, func(cart models.CartData) models.CartData {
		if cart == nil {
			return models.CartData{}
		}
		key := slotKey(itemID)
		if cart[key] > 0 {
			cart[key]--
			if cart[key] == 0 {
				delete(cart, key)
			}
		}
		return cart
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	return err
}

// DenseVector renders the sparse cart in the legacy 3000-slot shape with
// every untouched slot at zero.
func (s *CartService) DenseVector(cart models.CartData) map[string]uint {
	out := make(map[string]uint, legacySlots)
	for i := 0; i < legacySlots; i++ {
		out[strconv.Itoa(i)] = 0
	}
	for k, v := range cart {
		out[k] = v
	}
	return out
}

func slotKey(itemID uint) string {
	return strconv.FormatUint(uint64(itemID), 10)
}
