package domain

// Scheduling constants
const (
	GroomerDailyLimit     = 3 // bookings per groomer per day
	GroomingDurationHours = 3

	MaxCapacityRangeDays = 62 // two calendar months per capacity-range request
)

// Customer warning policy
const (
	WarningWatchlistThreshold = 3
	WarningHardLimit          = 5
)

// Money (whole pesos)
const (
	BookingFee   = 100
	BanUpliftFee = 500
)

// Upload limits
const (
	MaxUploadBytes = 8 << 20 // 8 MB per image
)

// Business validation constants
const (
	MaxNotesLength            = 500
	MaxCancellationNoteLength = 500
	MaxReviewLength           = 1000
	MinRating                 = 1
	MaxRating                 = 5
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses statuses that do not occupy a slot.
// Used when counting occupancy and free slots.
var InactiveStatuses = []BookingStatus{
	StatusCancelledByCustomer,
	StatusCancelledByAdmin,
	StatusCancelledLegacy,
}

// ActiveStatuses statuses that occupy a slot
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
