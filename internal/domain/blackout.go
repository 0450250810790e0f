package domain

import "time"

// CalendarBlackout marks a calendar day the shop is closed for bookings
type CalendarBlackout struct {
	ID        string
	Date      time.Time
	Reason    string
	CreatedAt time.Time
}
