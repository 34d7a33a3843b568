package booking

import (
	"context"

	"pitchbook/models"
)

const maxSuggestions = 3

// suggestAlternatives proposes replacements for a conflicted request: a free
// gap of the same duration on the same slot and day, the same time on
// another sub-slot, or the same time the next day. Best effort; lookup
// failures simply produce fewer suggestions.
func (s *DefaultBookingService) suggestAlternatives(ctx context.Context, ground *models.Ground, slot int, date string, durationMinutes int) []models.AlternativeSlot {
	var suggestions []models.AlternativeSlot

	// Free gaps the same day: subtract the day's bookings from opening hours.
	open, close := groundHours(ground)
	daySlots, err := s.Repo.FindOverlapping(ctx, ground.ID, slot, date, open, close, "")
	if err == nil {
		for _, gap := range freeGaps(open, close, daySlots) {
			gapLen := clockToMinutes(gap.end) - clockToMinutes(gap.start)
			if gapLen < durationMinutes || !s.startAllowed(date, gap.start) {
				continue
			}
			suggestions = append(suggestions, models.AlternativeSlot{
				GroundID:    ground.ID,
				GroundSlot:  slot,
				BookingDate: date,
				StartTime:   gap.start,
				EndTime:     minutesToClock(clockToMinutes(gap.start) + durationMinutes),
			})
			if len(suggestions) >= maxSuggestions {
				return suggestions
			}
		}
	}

	// Another sub-slot of the same ground at the original time. The original
	// request's times are not available here, so offer the first free gap on
	// each other slot.
	for other := 1; other <= ground.SlotCount && len(suggestions) < maxSuggestions; other++ {
		if other == slot {
			continue
		}
		otherBookings, err := s.Repo.FindOverlapping(ctx, ground.ID, other, date, open, close, "")
		if err != nil {
			continue
		}
		for _, gap := range freeGaps(open, close, otherBookings) {
			if clockToMinutes(gap.end)-clockToMinutes(gap.start) < durationMinutes || !s.startAllowed(date, gap.start) {
				continue
			}
			suggestions = append(suggestions, models.AlternativeSlot{
				GroundID:    ground.ID,
				GroundSlot:  other,
				BookingDate: date,
				StartTime:   gap.start,
				EndTime:     minutesToClock(clockToMinutes(gap.start) + durationMinutes),
			})
			break
		}
	}

	// Same slot the next day.
	if len(suggestions) < maxSuggestions {
		if d, err := parseDate(date); err == nil {
			nextDay := d.AddDate(0, 0, 1).Format(dateLayout)
			nextBookings, err := s.Repo.FindOverlapping(ctx, ground.ID, slot, nextDay, open, close, "")
			if err == nil {
				for _, gap := range freeGaps(open, close, nextBookings) {
					if clockToMinutes(gap.end)-clockToMinutes(gap.start) < durationMinutes || !s.startAllowed(nextDay, gap.start) {
						continue
					}
					suggestions = append(suggestions, models.AlternativeSlot{
						GroundID:    ground.ID,
						GroundSlot:  slot,
						BookingDate: nextDay,
						StartTime:   gap.start,
						EndTime:     minutesToClock(clockToMinutes(gap.start) + durationMinutes),
					})
					break
				}
			}
		}
	}

	return suggestions
}

// startAllowed reports whether a suggested start still satisfies the
// temporal creation rules, so no alternative is offered that creation would
// immediately reject.
func (s *DefaultBookingService) startAllowed(date, clock string) bool {
	startAt, err := combineDateTime(date, clock)
	if err != nil {
		return false
	}
	return s.checkStartWindow(startAt) == nil
}

type clockGap struct {
	start, end string
}

// freeGaps subtracts booked intervals from [open, close) and returns the
// remaining continuous gaps. Bookings are assumed sorted by start time, as
// the repository returns them.
func freeGaps(open, close string, booked []models.Booking) []clockGap {
	gaps := []clockGap{{start: open, end: close}}
	for _, b := range booked {
		var updated []clockGap
		for _, g := range gaps {
			if !overlaps(g.start, g.end, b.StartTime, b.EndTime) {
				updated = append(updated, g)
				continue
			}
			if b.StartTime > g.start {
				updated = append(updated, clockGap{start: g.start, end: b.StartTime})
			}
			if b.EndTime < g.end {
				updated = append(updated, clockGap{start: b.EndTime, end: g.end})
			}
		}
		gaps = updated
	}
	return gaps
}

// groundHours returns the ground's opening window, with defaults when unset.
func groundHours(ground *models.Ground) (open, close string) {
	open, close = ground.OpenTime, ground.CloseTime
	if open == "" {
		open = "06:00"
	}
	if close == "" {
		close = "22:00"
	}
	return open, close
}
