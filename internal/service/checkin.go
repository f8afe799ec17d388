package service

import (
	"fmt"
	"iter"

	"github.com/forgo/fete/internal/model"
)

// NoAttendeesLabel is the label of the single stat yielded when check-in
// reporting has no attendees to report on.
const NoAttendeesLabel = "No attendees registered"

// CheckinData carries the raw check-in counts for one event day.
// HourlyCheckins maps an hour of day to the number of attendees who
// checked in during that hour; hours with no entry count as zero.
type CheckinData struct {
	Attendees      []model.Attendee
	HourlyCheckins map[int]int
}

// CheckinStat is one row of the hourly check-in report
type CheckinStat struct {
	Label             string  `json:"label"` // "8:00" through "16:00"
	CheckedIn         int     `json:"checked_in"`
	CumulativePercent float64 `json:"cumulative_percent"`
}

// CheckinStats lazily yields one stat per hour of the configured check-in
// window, carrying that hour's check-in count and the cumulative
// percentage of all attendees checked in so far. When there are no
// attendees the sequence yields exactly one terminal "no attendees" stat.
// The sequence is finite and forward-only; stopping iteration early is the
// only way to cancel it, and re-invoking the method starts a fresh pass.
func (s *EventService) CheckinStats(data CheckinData) iter.Seq[CheckinStat] {
	return func(yield func(CheckinStat) bool) {
		total := len(data.Attendees)
		if total == 0 {
			yield(CheckinStat{Label: NoAttendeesLabel})
			return
		}

		cumulative := 0
		for hour := s.checkinOpenHour; hour <= s.checkinCloseHour; hour++ {
			count := data.HourlyCheckins[hour]
			cumulative += count

			stat := CheckinStat{
				Label:             fmt.Sprintf("%d:00", hour),
				CheckedIn:         count,
				CumulativePercent: float64(cumulative) / float64(total) * 100,
			}
			if !yield(stat) {
				return
			}
		}
	}
}
