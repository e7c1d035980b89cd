package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

type SlotPeriod string

const (
	SlotDay   SlotPeriod = "day"
	SlotNight SlotPeriod = "night"
)

// SlotInput is the raw wire shape of one requested slot, before validation.
type SlotInput struct {
	Date string `json:"date"`
	Slot string `json:"slot"`
}

// Slot is one bookable (calendar date, day/night period) unit of a room.
// Construct through ParseSlots; the zero value is not meaningful.
type Slot struct {
	Date   time.Time
	Period SlotPeriod
}

func (s Slot) Key() string {
	return s.Date.Format(DateLayout) + "/" + string(s.Period)
}

func (s Slot) MarshalJSON() ([]byte, error) {
	return json.Marshal(SlotInput{
		Date: s.Date.Format(DateLayout),
		Slot: string(s.Period),
	})
}

func (s *Slot) UnmarshalJSON(data []byte) error {
	var in SlotInput
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	d, err := time.ParseInLocation(DateLayout, in.Date, time.UTC)
	if err != nil {
		return err
	}
	s.Date = d
	s.Period = SlotPeriod(in.Slot)
	return nil
}

// SlotSet is an ordered collection of unique slots. Order is kept for
// display; uniqueness of (date, period) is guaranteed by ParseSlots.
type SlotSet []Slot

// ParseSlots validates a raw slot list and returns the typed set.
// Every failure is a *ValidationError keyed on the "slots" field.
func ParseSlots(in []SlotInput) (SlotSet, error) {
	if len(in) == 0 {
		return nil, NewValidationError("slots", "at least one slot is required")
	}

	out := make(SlotSet, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, entry := range in {
		if entry.Date == "" || entry.Slot == "" {
			return nil, NewValidationError("slots", "each slot must have date and slot fields")
		}
		period := SlotPeriod(entry.Slot)
		if period != SlotDay && period != SlotNight {
			return nil, NewValidationError("slots", fmt.Sprintf("invalid slot type: %s, must be day or night", entry.Slot))
		}
		d, err := time.ParseInLocation(DateLayout, entry.Date, time.UTC)
		if err != nil {
			return nil, NewValidationError("slots", fmt.Sprintf("invalid date format: %s, use YYYY-MM-DD", entry.Date))
		}
		key := entry.Date + "/" + entry.Slot
		if _, dup := seen[key]; dup {
			return nil, NewValidationError("slots", fmt.Sprintf("duplicate slot: %s on %s", entry.Slot, entry.Date))
		}
		seen[key] = struct{}{}
		out = append(out, Slot{Date: d, Period: period})
	}
	return out, nil
}

// MinDate returns the earliest slot date; it is the booking's check-in.
func (ss SlotSet) MinDate() time.Time {
	min := ss[0].Date
	for _, s := range ss[1:] {
		if s.Date.Before(min) {
			min = s.Date
		}
	}
	return min
}

// MaxDate returns the latest slot date; it is the booking's check-out.
func (ss SlotSet) MaxDate() time.Time {
	max := ss[0].Date
	for _, s := range ss[1:] {
		if s.Date.After(max) {
			max = s.Date
		}
	}
	return max
}

func (ss SlotSet) HasNight() bool {
	for _, s := range ss {
		if s.Period == SlotNight {
			return true
		}
	}
	return false
}

// Summary renders the set as "2 day + 1 night" for booking payloads.
func (ss SlotSet) Summary() string {
	var days, nights int
	for _, s := range ss {
		if s.Period == SlotNight {
			nights++
		} else {
			days++
		}
	}
	parts := make([]string, 0, 2)
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d day", days))
	}
	if nights > 0 {
		parts = append(parts, fmt.Sprintf("%d night", nights))
	}
	if len(parts) == 0 {
		return "no slots"
	}
	return strings.Join(parts, " + ")
}
