package portfolio

import "context"

// Repository provides read access to project records.
type Repository interface {
	ListAll(ctx context.Context) ([]Record, error)
}
