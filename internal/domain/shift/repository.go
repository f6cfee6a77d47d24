package shift

import "context"

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id, companyID string) (Shift, error)
	List(ctx context.Context, companyID string) ([]Shift, error)
	// MapByID returns all of a company's shifts keyed by id, the form the
	// reconciliation engine consumes.
	MapByID(ctx context.Context, companyID string) (map[string]Shift, error)
	Update(ctx context.Context, s Shift) error
	Delete(ctx context.Context, id, companyID string) error
}
