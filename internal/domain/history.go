package domain

import "time"

// HistoryAction identifies what happened to a booking
type HistoryAction string

const (
	ActionCreated         HistoryAction = "created"
	ActionConfirmed       HistoryAction = "confirmed"
	ActionRescheduled     HistoryAction = "rescheduled"
	ActionCancelled       HistoryAction = "cancelled"
	ActionCompleted       HistoryAction = "completed"
	ActionNoShow          HistoryAction = "no_show"
	ActionMediaUpdated    HistoryAction = "media_updated"
	ActionGroomerAssigned HistoryAction = "groomer_assigned"
	ActionUpdated         HistoryAction = "updated"
)

// HistoryActor identifies who triggered a history entry
type HistoryActor string

const (
	ActorAdmin    HistoryActor = "admin"
	ActorCustomer HistoryActor = "customer"
	ActorSystem   HistoryActor = "system"
)

// BookingHistoryEntry one append-only audit record for a booking
type BookingHistoryEntry struct {
	ID        string
	BookingID string
	Action    HistoryAction
	Message   string
	Actor     HistoryActor
	Timestamp time.Time
}
