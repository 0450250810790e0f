package domain

// TimeSlot is one of the fixed three-hour grooming windows
type TimeSlot string

const (
	SlotMorning   TimeSlot = "9am-12pm"
	SlotAfternoon TimeSlot = "12pm-3pm"
	SlotEvening   TimeSlot = "3pm-6pm"
)

// StandardTimeSlots slot order matches the working day
var StandardTimeSlots = []TimeSlot{SlotMorning, SlotAfternoon, SlotEvening}

var slotStartHours = map[TimeSlot]int{
	SlotMorning:   9,
	SlotAfternoon: 12,
	SlotEvening:   15,
}

// Bounds returns the 24-hour start and end of the window. Every window
// spans one full grooming session.
func (s TimeSlot) Bounds() (start, end int) {
	start = slotStartHours[s]
	return start, start + GroomingDurationHours
}

// IsValidTimeSlot reports whether s is one of the standard windows
func IsValidTimeSlot(s TimeSlot) bool {
	for _, slot := range StandardTimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
