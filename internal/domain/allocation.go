package domain

import "time"

// AllocationKind discriminates a guest booking day from an administrative hold
type AllocationKind string

const (
	KindBooking AllocationKind = "booking"
	KindBlocked AllocationKind = "blocked"
)

// Allocation represents one calendar day held by a booking or an administrative block.
// DayKey is the primary key: at most one Allocation exists per calendar day.
type Allocation struct {
	DayKey  string  // canonical YYYY-MM-DD
	OwnerID *string // booking/customer id, nil for administrative blocks

	// Full check-in/check-out bounds of the stay this day belongs to,
	// denormalized onto every day row so a single lookup reveals the whole stay
	RangeStart time.Time
	RangeEnd   time.Time

	OccupancyCount int // number of guests, 0 for blocks
	Kind           AllocationKind

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocked returns true if the day is held administratively rather than booked
func (a *Allocation) IsBlocked() bool {
	return a.Kind == KindBlocked
}

// HeldBy returns true if the allocation belongs to the given owner
func (a *Allocation) HeldBy(ownerID string) bool {
	return a.OwnerID != nil && *a.OwnerID == ownerID
}

// RangeAllocation describes a whole-range write: one Allocation per covered day.
// Days are always written and removed in whole-range batches, never patched in place.
type RangeAllocation struct {
	OwnerID        *string
	Range          DateRange
	OccupancyCount int
	Kind           AllocationKind
}

// ParseAllocationKind конвертирует строку в AllocationKind с валидацией
func ParseAllocationKind(kind string) (AllocationKind, bool) {
	k := AllocationKind(kind)
	for _, valid := range Kinds {
		if k == valid {
			return k, true
		}
	}
	return "", false
}
