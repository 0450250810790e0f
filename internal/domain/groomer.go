package domain

import "time"

// Groomer represents a member of the grooming roster
type Groomer struct {
	ID               string
	Name             string
	Specialty        string
	MaxDailyBookings int
	Reserve          bool
	StaffUserID      *string // linked staff account, if any

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DailyLimit returns the per-day booking cap for the groomer
func (g *Groomer) DailyLimit() int {
	if g.MaxDailyBookings > 0 {
		return g.MaxDailyBookings
	}
	return GroomerDailyLimit
}

// DefaultRoster is seeded on first start when the groomers table is empty
var DefaultRoster = []Groomer{
	{ID: "groomer-sam", Name: "Sam", Specialty: "Small breed specialist", MaxDailyBookings: GroomerDailyLimit},
	{ID: "groomer-jom", Name: "Jom", Specialty: "Double-coat care", MaxDailyBookings: GroomerDailyLimit},
	{ID: "groomer-botchoy", Name: "Botchoy", Specialty: "Creative trims & styling", MaxDailyBookings: GroomerDailyLimit},
	{ID: "groomer-jinold", Name: "Jinold", Specialty: "Senior pet handler", MaxDailyBookings: GroomerDailyLimit},
	{ID: "groomer-ejay", Name: "Ejay", Specialty: "Cat whisperer", MaxDailyBookings: GroomerDailyLimit},
}
