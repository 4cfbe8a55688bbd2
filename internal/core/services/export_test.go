package services

import "time"

func (m *SessionManager) SetClock(now func() time.Time) {
	m.now = now
}

func (m *SessionManager) ProcessExpiredSessions() int {
	return m.processExpiredSessions()
}
