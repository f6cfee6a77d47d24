package reconcile

import (
	"testing"
	"time"

	"github.com/chronoshq/timeclock-backend-go/internal/domain/reconcile"
	"github.com/stretchr/testify/assert"
)

func TestWorkedMinutes_PairsInTimeOrder(t *testing.T) {
	t.Parallel()

	// Registration order is scrambled; pairing must follow clock order.
	punches := []TimeOfDay{{17, 30}, {8, 0}, {13, 0}, {12, 0}}

	total, valid := WorkedMinutes(punches)

	// 08:00-12:00 plus 13:00-17:30.
	assert.Equal(t, 240+270, total)
	assert.True(t, valid)
}

func TestWorkedMinutes_OddPunchContributesNothing(t *testing.T) {
	t.Parallel()

	punches := []TimeOfDay{{8, 0}, {12, 0}, {13, 0}}

	total, valid := WorkedMinutes(punches)

	assert.Equal(t, 240, total)
	assert.True(t, valid)
}

func TestWorkedMinutes_SinglePunch(t *testing.T) {
	t.Parallel()

	total, valid := WorkedMinutes([]TimeOfDay{{8, 0}})

	assert.Zero(t, total)
	assert.False(t, valid)
}

func TestWorkedMinutes_EqualPairContributesZero(t *testing.T) {
	t.Parallel()

	// Exit equal to entry is malformed data, never negative time.
	total, valid := WorkedMinutes([]TimeOfDay{{8, 0}, {8, 0}})

	assert.Zero(t, total)
	assert.False(t, valid)
}

func TestWorkedMinutes_PairCount(t *testing.T) {
	t.Parallel()

	// n punches pair into floor(n/2) intervals regardless of input order.
	tests := []struct {
		name    string
		punches []TimeOfDay
		want    int
	}{
		{"empty", nil, 0},
		{"two", []TimeOfDay{{9, 0}, {8, 0}}, 60},
		{"six", []TimeOfDay{{18, 0}, {8, 0}, {12, 0}, {14, 0}, {13, 0}, {9, 0}}, 60 + 60 + 240},
		{"eight", []TimeOfDay{{8, 0}, {9, 0}, {10, 0}, {11, 0}, {12, 0}, {13, 0}, {14, 0}, {15, 0}}, 240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			total, _ := WorkedMinutes(tt.punches)
			assert.Equal(t, tt.want, total)
		})
	}
}

func TestWorkedMinutes_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	punches := []TimeOfDay{{17, 0}, {8, 0}}

	_, _ = WorkedMinutes(punches)

	assert.Equal(t, []TimeOfDay{{17, 0}, {8, 0}}, punches)
}

func TestNormalizeSlots_DropsBadValues(t *testing.T) {
	t.Parallel()

	slots := []string{"08:00", "garbage", "", "1730", "--:--"}

	punches := NormalizeSlots(slots)

	assert.Equal(t, []TimeOfDay{{8, 0}, {17, 30}}, punches)
}

func TestClassifyDay(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		worked     int
		hadPunches bool
		hadValid   bool
		wantClass  reconcile.DayClass
		wantOver   int
		wantShort  int
		wantAbsent int
	}{
		{"overtime", 570, true, true, reconcile.DayOvertime, 90, 0, 0},
		{"shortfall", 400, true, true, reconcile.DayShortfall, 0, 80, 0},
		{"exactly on time", 480, true, true, reconcile.DayOnTime, 0, 0, 0},
		{"within tolerance above", 481, true, true, reconcile.DayOnTime, 0, 0, 0},
		{"within tolerance below", 479, true, true, reconcile.DayOnTime, 0, 0, 0},
		{"just past tolerance", 482, true, true, reconcile.DayOvertime, 2, 0, 0},
		{"absence", 0, false, false, reconcile.DayAbsence, 0, 0, 480},
		{"unreliable data", 0, true, false, reconcile.DayUnreliable, 0, 0, 480},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := ClassifyDay(day, tt.worked, 480, tt.hadPunches, tt.hadValid, 1)

			assert.Equal(t, tt.wantClass, out.Class)
			assert.Equal(t, tt.wantOver, out.OvertimeMinutes)
			assert.Equal(t, tt.wantShort, out.ShortfallMinutes)
			assert.Equal(t, tt.wantAbsent, out.AbsenceMinutes)
			assert.Equal(t, 480, out.ExpectedMinutes)

			// Overtime and shortfall are mutually exclusive per day.
			assert.False(t, out.OvertimeMinutes > 0 && out.ShortfallMinutes > 0)
		})
	}
}

func TestClassifyDay_AbsenceZeroesWorked(t *testing.T) {
	t.Parallel()

	out := ClassifyDay(time.Date(2024, time.January, 4, 0, 0, 0, 0, time.UTC), 0, 480, false, false, 1)

	assert.Zero(t, out.WorkedMinutes)
	assert.Equal(t, 480, out.AbsenceMinutes)
}
