package services

import (
	"bean-bloom/models"
	"bean-bloom/repositories"
)

// CartStore is the single source of truth for one persisted cart. It
// loads the slot once at construction, mutates in memory, and rewrites
// the slot synchronously before every mutating call returns, so what the
// caller observed is always what is persisted.
type CartStore struct {
	storage repositories.CartStorage
	items   []models.LineItem
}

// NewCartStore loads the persisted cart. Missing or unparsable data is
// an empty cart, never an error.
func NewCartStore(storage repositories.CartStorage) *CartStore {
	items, err := storage.Load()
	if err != nil || items == nil {
		items = []models.LineItem{}
	}
	return &CartStore{storage: storage, items: items}
}

// Items returns a copy of the line items in insertion order.
func (s *CartStore) Items() []models.LineItem {
	out := make([]models.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Count sums the quantities across all line items.
func (s *CartStore) Count() int {
	count := 0
	for _, item := range s.items {
		count += item.Qty
	}
	return count
}

func (s *CartStore) find(id models.ProductID) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Add merges qty into the existing line item for the product or appends
// a new one snapshotting the product's current name, price, and image.
// Non-positive qty is ignored.
func (s *CartStore) Add(p models.Product, qty int) error {
	if qty <= 0 {
		return nil
	}

	id := models.ProductIDFromInt(p.ID)
	if i := s.find(id); i >= 0 {
		s.items[i].Qty += qty
	} else {
		s.items = append(s.items, models.LineItem{
			ID:    id,
			Qty:   qty,
			Name:  p.Name,
			Price: p.Price,
			Image: p.Image,
		})
	}
	return s.persist()
}

// Remove deletes the line item matching id; no-op when absent.
func (s *CartStore) Remove(id models.ProductID) error {
	i := s.find(id)
	if i < 0 {
		return nil
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return s.persist()
}

// SetQuantity clamps qty to >= 0; zero removes the item. No-op when the
// id is not in the cart.
func (s *CartStore) SetQuantity(id models.ProductID, qty int) error {
	i := s.find(id)
	if i < 0 {
		return nil
	}
	if qty <= 0 {
		return s.Remove(id)
	}
	s.items[i].Qty = qty
	return s.persist()
}

// Clear empties the cart; used after a successful checkout.
func (s *CartStore) Clear() error {
	s.items = []models.LineItem{}
	return s.persist()
}

// Totals recomputes the money view on every call, never cached.
func (s *CartStore) Totals() models.Totals {
	var subtotal float64
	for _, item := range s.items {
		subtotal += item.Price * float64(item.Qty)
	}
	shipping := ShippingFor(subtotal)
	return models.Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}

func (s *CartStore) persist() error {
	return s.storage.Save(s.items)
}
