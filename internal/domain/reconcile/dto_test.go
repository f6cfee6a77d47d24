package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBalanceReportRequest_HasPeriod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"both bounds", "2024-01-01", "2024-01-31", true},
		{"missing end", "2024-01-01", "", false},
		{"missing start", "", "2024-01-31", false},
		{"both missing", "", "", false},
		{"whitespace only", "  ", "2024-01-31", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := BalanceReportRequest{StartDate: tt.start, EndDate: tt.end}
			assert.Equal(t, tt.want, req.HasPeriod())
		})
	}
}

func TestBalanceReportRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{"valid period", "2024-01-01", "2024-01-31", false},
		{"single day", "2024-01-03", "2024-01-03", false},
		// Absent bounds are an empty report, not a validation failure.
		{"both absent", "", "", false},
		{"only start", "2024-01-01", "", false},
		{"malformed start", "01/01/2024", "2024-01-31", true},
		{"malformed end", "2024-01-01", "yesterday", true},
		{"start after end", "2024-02-01", "2024-01-31", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := BalanceReportRequest{StartDate: tt.start, EndDate: tt.end}
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
