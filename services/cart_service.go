package services

import (
	"foodie-finder/models"
	"foodie-finder/repositories"
)

type CartService struct {
	sessions *repositories.SessionRepository
}

func NewCartService(sessions *repositories.SessionRepository) *CartService {
	return &CartService{sessions: sessions}
}

func (s *CartService) Get(userID int) models.CartResponse {
	sess := s.sessions.Get(userID)
	sess.Lock()
	defer sess.Unlock()
	return cartResponse(sess.Cart)
}

func (s *CartService) AddItem(userID int, item models.CartItem) models.CartResponse {
	sess := s.sessions.Get(userID)
	sess.Lock()
	defer sess.Unlock()

	sess.Cart.AddItem(item)
	return cartResponse(sess.Cart)
}

func (s *CartService) UpdateQuantity(userID, itemID, quantity int) (models.CartResponse, error) {
	sess := s.sessions.Get(userID)
	sess.Lock()
	defer sess.Unlock()

	if err := sess.Cart.UpdateQuantity(itemID, quantity); err != nil {
		return models.CartResponse{}, err
	}
	return cartResponse(sess.Cart), nil
}

func (s *CartService) Clear(userID int) models.CartResponse {
	sess := s.sessions.Get(userID)
	sess.Lock()
	defer sess.Unlock()

	sess.Cart.Clear()
	return cartResponse(sess.Cart)
}

func cartResponse(cart *models.Cart) models.CartResponse {
	return models.CartResponse{
		Items:     cart.Items(),
		ItemCount: cart.ItemCount(),
		Subtotal:  cart.Subtotal(),
	}
}
