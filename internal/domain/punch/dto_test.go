package punch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordPunchRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     RecordPunchRequest
		wantErr bool
	}{
		{"valid clock value", RecordPunchRequest{EmployeeID: "emp-1", Date: "2024-01-03", Value: "08:00"}, false},
		// Unreadable values are accepted; the engine sorts them out later.
		{"garbage value accepted", RecordPunchRequest{EmployeeID: "emp-1", Date: "2024-01-03", Value: "garbage"}, false},
		{"missing employee", RecordPunchRequest{Date: "2024-01-03", Value: "08:00"}, true},
		{"bad date", RecordPunchRequest{EmployeeID: "emp-1", Date: "03/01/2024", Value: "08:00"}, true},
		{"empty value", RecordPunchRequest{EmployeeID: "emp-1", Date: "2024-01-03"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestListPunchesRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := ListPunchesRequest{EmployeeID: "emp-1", StartDate: "2024-01-01", EndDate: "2024-01-31"}
	assert.NoError(t, valid.Validate())

	reversed := ListPunchesRequest{EmployeeID: "emp-1", StartDate: "2024-02-01", EndDate: "2024-01-31"}
	assert.Error(t, reversed.Validate())

	missing := ListPunchesRequest{StartDate: "2024-01-01", EndDate: "2024-01-31"}
	assert.Error(t, missing.Validate())
}
