package models

import "time"

type NotificationCategory string

const (
	CategoryOrder    NotificationCategory = "order"
	CategoryOffer    NotificationCategory = "offer"
	CategoryDelivery NotificationCategory = "delivery"
)

func (c NotificationCategory) Valid() bool {
	switch c {
	case CategoryOrder, CategoryOffer, CategoryDelivery:
		return true
	}
	return false
}

type Notification struct {
	ID        int64                `json:"id"`
	Category  NotificationCategory `json:"category"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	CreatedAt time.Time            `json:"created_at"`
	Read      bool                 `json:"read"`
}

// NotificationLog keeps a session's notifications newest-first. IDs are
// assigned from a per-log counter so they are unique and creation-ordered.
// Entries are never deleted.
type NotificationLog struct {
	nextID  int64
	entries []Notification
}

func NewNotificationLog() *NotificationLog {
	return &NotificationLog{nextID: 1}
}

// Add prepends a fresh unread notification and returns it.
func (l *NotificationLog) Add(category NotificationCategory, title, message string) Notification {
	n := Notification{
		ID:        l.nextID,
		Category:  category,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}
	l.nextID++
	l.entries = append([]Notification{n}, l.entries...)
	return n
}

func (l *NotificationLog) MarkAsRead(id int64) error {
	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries[i].Read = true
			return nil
		}
	}
	return ErrNotificationNotFound
}

func (l *NotificationLog) UnreadCount() int {
	count := 0
	for _, n := range l.entries {
		if !n.Read {
			count++
		}
	}
	return count
}

func (l *NotificationLog) All() []Notification {
	out := make([]Notification, len(l.entries))
	copy(out, l.entries)
	return out
}
