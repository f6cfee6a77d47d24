package reconcile

import (
	"sort"
	"time"

	"github.com/chronoshq/timeclock-backend-go/internal/domain/reconcile"
)

// NormalizeSlots runs every raw slot of one day through the normalizer,
// dropping the ones that do not parse. Slot order is registration order and
// carries no meaning here.
func NormalizeSlots(slots []string) []TimeOfDay {
	var punches []TimeOfDay
	for _, s := range slots {
		if t, ok := NormalizePunch(s); ok {
			punches = append(punches, t)
		}
	}
	return punches
}

// WorkedMinutes pairs the day's canonical punches into entry/exit intervals
// and sums their lengths. Punches are sorted by time first, then paired
// consecutively; a pair whose exit does not come after its entry is
// malformed data and contributes zero, and an odd trailing punch is
// ignored. The second return distinguishes "no valid interval at all" from
// a genuinely worked day.
func WorkedMinutes(punches []TimeOfDay) (int, bool) {
	sorted := make([]TimeOfDay, len(punches))
	copy(sorted, punches)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinuteOfDay() < sorted[j].MinuteOfDay()
	})

	total := 0
	hadValid := false
	for i := 0; i+1 < len(sorted); i += 2 {
		entry := sorted[i].MinuteOfDay()
		exit := sorted[i+1].MinuteOfDay()
		if exit > entry {
			total += exit - entry
			hadValid = true
		}
	}
	return total, hadValid
}

// ClassifyDay buckets one business day. hadPunches tells absence (no data
// at all) apart from unreliable data (punches present, no valid interval);
// both zero out the worked time and charge the full expected minutes, but
// they stay distinguishable for observability.
func ClassifyDay(date time.Time, worked, expected int, hadPunches, hadValidInterval bool, toleranceMinutes int) reconcile.DailyOutcome {
	out := reconcile.DailyOutcome{
		Date:            date,
		ExpectedMinutes: expected,
	}

	if !hadValidInterval {
		out.Class = reconcile.DayAbsence
		if hadPunches {
			out.Class = reconcile.DayUnreliable
		}
		out.AbsenceMinutes = expected
		return out
	}

	out.WorkedMinutes = worked
	switch diff := worked - expected; {
	case diff > toleranceMinutes:
		out.Class = reconcile.DayOvertime
		out.OvertimeMinutes = diff
	case -diff > toleranceMinutes:
		out.Class = reconcile.DayShortfall
		out.ShortfallMinutes = -diff
	default:
		out.Class = reconcile.DayOnTime
	}
	return out
}
