package services

import (
	"foodie-finder/models"
	"foodie-finder/repositories"
)

type OrderService struct {
	sessions *repositories.SessionRepository
}

func NewOrderService(sessions *repositories.SessionRepository) *OrderService {
	return &OrderService{sessions: sessions}
}

// List returns the session's order history, newest first.
func (s *OrderService) List(userID int) []models.Order {
	sess := s.sessions.Get(userID)
	sess.Lock()
	defer sess.Unlock()

	out := make([]models.Order, len(sess.Orders))
	copy(out, sess.Orders)
	return out
}
