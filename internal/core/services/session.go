package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/epic_events/internal/core/domain"
	"github.com/srgjo27/epic_events/internal/core/ports"
)

const (
	DefaultSessionIdleTimeout = 30 * time.Minute
	DefaultMaxSessions        = 10000
)

// Session is one visitor's page session. It carries the state shared between
// otherwise independent views: the language, the selected games, the booking
// form and the pending toasts.
type Session struct {
	ID uuid.UUID

	selection *SelectionStore
	newFlow   func(s *Session) *BookingFlow

	mu        sync.Mutex
	lang      domain.Language
	flow      *BookingFlow
	toasts    []domain.Notification
	listeners map[int]func(domain.Language)
	nextID    int
	closers   map[int]func()
	lastSeen  time.Time
	closed    bool
}

func newSession(id uuid.UUID, now time.Time, newFlow func(s *Session) *BookingFlow) *Session {
	return &Session{
		ID:        id,
		selection: NewSelectionStore(),
		newFlow:   newFlow,
		lang:      domain.DefaultLanguage,
		listeners: make(map[int]func(domain.Language)),
		closers:   make(map[int]func()),
		lastSeen:  now,
	}
}

func (s *Session) Language() domain.Language {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lang
}

// SetLanguage switches the session language and notifies subscribers when it
// actually changed.
func (s *Session) SetLanguage(lang domain.Language) {
	s.mu.Lock()
	if s.closed || s.lang == lang {
		s.mu.Unlock()
		return
	}

	s.lang = lang
	listeners := make([]func(domain.Language), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(lang)
	}
}

func (s *Session) ToggleLanguage() domain.Language {
	next := s.Language().Other()
	s.SetLanguage(next)
	return next
}

// OnLanguageChange subscribes fn to language changes until the returned
// function is called.
func (s *Session) OnLanguageChange(fn func(domain.Language)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// OnClose registers teardown work, such as stopping a carousel, to run when
// the session ends. The returned function drops the registration.
func (s *Session) OnClose(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		fn()
		return func() {}
	}

	id := s.nextID
	s.nextID++
	s.closers[id] = fn

	return func() {
		s.mu.Lock()
		delete(s.closers, id)
		s.mu.Unlock()
	}
}

func (s *Session) Selection() *SelectionStore {
	return s.selection
}

// Booking returns the session's booking form. Once a form has been
// submitted successfully a fresh one takes its place.
func (s *Session) Booking() *BookingFlow {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.flow == nil || s.flow.State() == domain.SubmissionSubmitted {
		s.flow = s.newFlow(s)
	}

	return s.flow
}

// Notify queues a toast for the next render.
func (s *Session) Notify(n domain.Notification) {
	s.mu.Lock()
	s.toasts = append(s.toasts, n)
	s.mu.Unlock()
}

// Toasts drains the pending toasts.
func (s *Session) Toasts() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.toasts
	s.toasts = nil
	return out
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return now.Sub(s.lastSeen)
}

// Close ends the session: registered teardown runs, subscribers are dropped
// and the selection is emptied.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	s.closed = true
	closers := make([]func(), 0, len(s.closers))
	for _, fn := range s.closers {
		closers = append(closers, fn)
	}
	s.closers = make(map[int]func())
	s.listeners = make(map[int]func(domain.Language))
	s.mu.Unlock()

	for _, fn := range closers {
		fn()
	}
	s.selection.Clear()
}

type SessionManager struct {
	bookingRepo ports.BookingRepository
	publisher   ports.BookingPublisher
	idleTimeout time.Duration
	maxSessions int
	now         func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

type SessionManagerOption func(*SessionManager)

// WithMaxSessions caps the number of live sessions. Creating a session at the
// cap ends the one idle the longest.
func WithMaxSessions(n int) SessionManagerOption {
	return func(m *SessionManager) {
		if n > 0 {
			m.maxSessions = n
		}
	}
}

func NewSessionManager(bookingRepo ports.BookingRepository, publisher ports.BookingPublisher, idleTimeout time.Duration, opts ...SessionManagerOption) *SessionManager {
	if idleTimeout <= 0 {
		idleTimeout = DefaultSessionIdleTimeout
	}

	m := &SessionManager{
		bookingRepo: bookingRepo,
		publisher:   publisher,
		idleTimeout: idleTimeout,
		maxSessions: DefaultMaxSessions,
		now:         time.Now,
		sessions:    make(map[uuid.UUID]*Session),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *SessionManager) newFlow(s *Session) *BookingFlow {
	return NewBookingFlow(m.bookingRepo, m.publisher, s.Selection(), s, s.Language)
}

func (m *SessionManager) Create() *Session {
	now := m.now()
	s := newSession(uuid.New(), now, m.newFlow)

	m.mu.Lock()
	var evicted *Session
	if len(m.sessions) >= m.maxSessions {
		evicted = m.oldestLocked(now)
		delete(m.sessions, evicted.ID)
	}
	m.sessions[s.ID] = s
	m.mu.Unlock()

	if evicted != nil {
		log.Printf("Session limit %d reached, ending idle session %s", m.maxSessions, evicted.ID)
		evicted.Close()
	}

	return s
}

func (m *SessionManager) oldestLocked(now time.Time) *Session {
	var oldest *Session
	var longest time.Duration

	for _, s := range m.sessions {
		if idle := s.idleSince(now); oldest == nil || idle > longest {
			oldest, longest = s, idle
		}
	}

	return oldest
}

// Get returns a live session and marks it as seen.
func (m *SessionManager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()

	if !ok {
		return nil, false
	}

	s.touch(m.now())
	return s, true
}

// Resolve parses a session id from a cookie value and returns the matching
// session, creating a new one when the value is missing, malformed or stale.
func (m *SessionManager) Resolve(raw string) (*Session, bool) {
	if id, err := uuid.Parse(raw); err == nil {
		if s, ok := m.Get(id); ok {
			return s, false
		}
	}

	return m.Create(), true
}

func (m *SessionManager) End(id uuid.UUID) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		s.Close()
	}
}

func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}

func (m *SessionManager) RunBackgroundCleanup(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	log.Println("Background Worker started: Checking idle sessions every 1 minute...")

	for {
		select {
		case <-ctx.Done():
			log.Println("Background Worker stopped.")
			return
		case <-ticker.C:
			m.processExpiredSessions()
		}
	}
}

func (m *SessionManager) processExpiredSessions() int {
	now := m.now()

	m.mu.Lock()
	var expired []*Session
	for id, s := range m.sessions {
		if s.idleSince(now) >= m.idleTimeout {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	if len(expired) == 0 {
		return 0
	}

	log.Printf("Found %d idle sessions. Cleaning up...", len(expired))

	for _, s := range expired {
		s.Close()
	}

	return len(expired)
}

// CloseAll ends every session, used on shutdown.
func (m *SessionManager) CloseAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[uuid.UUID]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
