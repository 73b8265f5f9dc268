package domain

// Default schedule values
const (
	DefaultPositions = 2  // minister positions per service occurrence
	DefaultRangeDays = 21 // three weeks, as shown by the calendar grid
	MaxRangeDays     = 92
	DaysInWeek       = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Reasons attached to calendar update notifications
const (
	ReasonServiceTimeAdded   = "service_time_added"
	ReasonServiceTimeDeleted = "service_time_deleted"
	ReasonWeekCopied         = "week_copied"
	ReasonSlotAssigned       = "slot_assigned"
	ReasonSlotReleased       = "slot_released"
	ReasonMinisterAdded      = "minister_added"
	ReasonMinisterDeleted    = "minister_deleted"
	ReasonCalendarReset      = "calendar_reset"
)
