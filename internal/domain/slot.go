package domain

import "time"

// MinisterSlot is one assignable minister position of a service occurrence
type MinisterSlot struct {
	ID           string
	ServiceID    string
	Date         time.Time // calendar day, midnight UTC
	Position     int       // 1-based
	MinisterID   *string
	MinisterName *string // resolved from the roster on read
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsOpen returns true if no minister holds the slot
func (s *MinisterSlot) IsOpen() bool {
	return s.MinisterID == nil
}

// IsAssignedTo returns true if ministerID holds the slot
func (s *MinisterSlot) IsAssignedTo(ministerID string) bool {
	return s.MinisterID != nil && *s.MinisterID == ministerID
}

// Key returns the identity of the slot within its occurrence
func (s *MinisterSlot) Key() SlotKey {
	return SlotKey{ServiceID: s.ServiceID, Date: NormalizeDate(s.Date), Position: s.Position}
}

// BelongsTo reports whether the slot is part of the (serviceID, date) occurrence
func (s *MinisterSlot) BelongsTo(serviceID string, date time.Time) bool {
	return s.ServiceID == serviceID && SameDay(s.Date, date)
}

// SlotKey uniquely identifies a slot: (service, date, position)
type SlotKey struct {
	ServiceID string
	Date      time.Time
	Position  int
}

// IsMinisterAssigned reports whether ministerID holds any slot of the
// (serviceID, date) occurrence, whatever the position
func IsMinisterAssigned(slots []*MinisterSlot, ministerID, serviceID string, date time.Time) bool {
	for _, slot := range slots {
		if slot.BelongsTo(serviceID, date) && slot.IsAssignedTo(ministerID) {
			return true
		}
	}
	return false
}
