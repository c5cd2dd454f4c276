package services

import (
	"foodie-finder/libs"
	"foodie-finder/models"
	"foodie-finder/repositories"
)

type NotificationService struct {
	sessions *repositories.SessionRepository
}

func NewNotificationService(sessions *repositories.SessionRepository) *NotificationService {
	return &NotificationService{sessions: sessions}
}

func (s *NotificationService) List(userID int) models.NotificationsResponse {
	sess := s.sessions.Get(userID)
	sess.Lock()
	defer sess.Unlock()

	return models.NotificationsResponse{
		Notifications: sess.Notifications.All(),
		UnreadCount:   sess.Notifications.UnreadCount(),
	}
}

func (s *NotificationService) Add(userID int, category models.NotificationCategory, title, message string) (models.Notification, error) {
	if !category.Valid() {
		return models.Notification{}, models.ErrInvalidNotificationCategory
	}

	sess := s.sessions.Get(userID)
	sess.Lock()
	defer sess.Unlock()

	n := sess.Notifications.Add(category, title, message)
	libs.NotificationsCreated.WithLabelValues(string(category)).Inc()
	return n, nil
}

func (s *NotificationService) MarkAsRead(userID int, id int64) error {
	sess := s.sessions.Get(userID)
	sess.Lock()
	defer sess.Unlock()

	return sess.Notifications.MarkAsRead(id)
}

func (s *NotificationService) UnreadCount(userID int) int {
	sess := s.sessions.Get(userID)
	sess.Lock()
	defer sess.Unlock()

	return sess.Notifications.UnreadCount()
}
