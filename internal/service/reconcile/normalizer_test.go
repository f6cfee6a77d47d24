package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePunch_AcceptedShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  TimeOfDay
	}{
		{"clock", "08:30", TimeOfDay{8, 30}},
		{"clock with seconds", "17:45:12", TimeOfDay{17, 45}},
		{"timestamp", "2024-01-03 08:00:00", TimeOfDay{8, 0}},
		{"timestamp without seconds", "2024-01-03 22:15", TimeOfDay{22, 15}},
		{"iso timestamp", "2024-01-03T06:05:00Z", TimeOfDay{6, 5}},
		{"compact three digits", "830", TimeOfDay{8, 30}},
		{"compact four digits", "1430", TimeOfDay{14, 30}},
		{"compact midnight", "000", TimeOfDay{0, 0}},
		{"padded whitespace", "  09:00 ", TimeOfDay{9, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := NormalizePunch(tt.value)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePunch_RejectedShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"absence marker dash", "-"},
		{"absence marker clock", "--:--"},
		{"absence marker null", "NULL"},
		{"garbage", "not a time"},
		{"compact hour out of range", "2460"},
		{"compact minute out of range", "871"},
		{"compact too long", "12345"},
		{"compact too short", "12"},
		{"clock hour out of range", "25:00"},
		{"clock minute out of range", "10:61"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, ok := NormalizePunch(tt.value)
			assert.False(t, ok)
		})
	}
}

func TestNormalizePunch_NeverPanics(t *testing.T) {
	t.Parallel()

	// A single bad slot must degrade to "no value", never abort the day.
	for _, v := range []string{"", "::", "9999999999", "08:3o", "\x00", "24:00"} {
		assert.NotPanics(t, func() {
			_, _ = NormalizePunch(v)
		})
	}
}

func TestMinuteOfDay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, TimeOfDay{0, 0}.MinuteOfDay())
	assert.Equal(t, 510, TimeOfDay{8, 30}.MinuteOfDay())
	assert.Equal(t, 1439, TimeOfDay{23, 59}.MinuteOfDay())
}
