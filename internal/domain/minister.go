package domain

import "time"

// Minister is a roster entry. UserID links the minister to an external user identity.
type Minister struct {
	ID        string
	Name      string
	Email     *string
	UserID    *string
	CreatedAt time.Time
}

// IsLinkedTo returns true if the minister belongs to the given user
func (m *Minister) IsLinkedTo(userID string) bool {
	return m != nil && m.UserID != nil && *m.UserID == userID
}
