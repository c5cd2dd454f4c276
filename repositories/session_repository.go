package repositories

import (
	"sync"

	"foodie-finder/models"
)

// Session owns everything scoped to one signed-in user: cart, notification
// log, the active checkout (nil when none) and order history. All of it is
// in-memory only.
//
// State transitions within a session are logically serial, but the HTTP host
// is concurrent and the deferred redirect-payment confirmation lands on its
// own goroutine, so the session carries a lock. Callers hold it across a
// whole operation.
type Session struct {
	mu sync.Mutex

	UserID        int
	Cart          *models.Cart
	Notifications *models.NotificationLog
	Checkout      *models.CheckoutSession
	Orders        []models.Order
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// SessionRepository hands out per-user sessions, creating them empty on
// first use. Nothing is shared between sessions.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[int]*Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[int]*Session),
	}
}

func (r *SessionRepository) Get(userID int) *Session {
	r.mu.RLock()
	s, ok := r.sessions[userID]
	r.mu.RUnlock()
	if ok {
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[userID]; ok {
		return s
	}
	s = &Session{
		UserID:        userID,
		Cart:          models.NewCart(),
		Notifications: models.NewNotificationLog(),
	}
	r.sessions[userID] = s
	return s
}

// Delete drops a session entirely; used on logout.
func (r *SessionRepository) Delete(userID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, userID)
}
