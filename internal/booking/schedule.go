package booking

import (
	"time"

	"github.com/google/uuid"
)

// Interval is the half-open time range [Start, End) occupied by an
// appointment. Touching intervals do not overlap.
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start time.Time, durationMinutes int) Interval {
	return Interval{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// ScheduledInterval is one currently scheduled appointment's slice of the
// calendar, identified so an update can be excluded from its own check.
type ScheduledInterval struct {
	AppointmentID uuid.UUID
	Interval
}

// FindConflict scans the scheduled calendar for an interval overlapping the
// candidate. exclude names an appointment to skip (uuid.Nil to skip none).
// The scan is O(n); the calendar of a single salon stays small. Only the
// existence of a conflict is guaranteed, not which one is reported.
func FindConflict(candidate Interval, existing []ScheduledInterval, exclude uuid.UUID) (uuid.UUID, bool) {
	for _, s := range existing {
		if exclude != uuid.Nil && s.AppointmentID == exclude {
			continue
		}
		if candidate.Overlaps(s.Interval) {
			return s.AppointmentID, true
		}
	}
	return uuid.Nil, false
}

type Reason string

const (
	ReasonAvailable Reason = "available"
	ReasonOccupied  Reason = "occupied"
	ReasonPast      Reason = "past"
)

type Decision struct {
	Available bool
	Reason    Reason
}

// Availability decides whether the candidate interval can be booked. A single
// now, UTC, is used for the past check; a conflict is reported as occupied
// even when the slot is also in the past.
func Availability(candidate Interval, existing []ScheduledInterval, now time.Time) Decision {
	if _, conflict := FindConflict(candidate, existing, uuid.Nil); conflict {
		return Decision{Available: false, Reason: ReasonOccupied}
	}
	if candidate.Start.Before(now) {
		return Decision{Available: false, Reason: ReasonPast}
	}
	return Decision{Available: true, Reason: ReasonAvailable}
}
