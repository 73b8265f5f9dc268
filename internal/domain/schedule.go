package domain

import "time"

// DayView is one calendar day of the schedule
type DayView struct {
	Date           time.Time
	IsToday        bool
	IsCurrentMonth bool
	Services       []ServiceSlots
}

// ServiceSlots pairs a service definition with its slots on a given day
type ServiceSlots struct {
	Service *ServiceTime
	Slots   []*MinisterSlot
}

// Week is a group of consecutive days for grid display
type Week []DayView
