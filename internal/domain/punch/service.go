package punch

import "context"

type PunchService interface {
	// Record appends one raw punch value to the employee's day, creating
	// the day row when it does not exist yet.
	Record(ctx context.Context, req RecordPunchRequest) (DaySlotsResponse, error)
	List(ctx context.Context, req ListPunchesRequest) ([]DaySlotsResponse, error)
}
