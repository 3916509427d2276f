package selection

import "context"

// Store persists the selected product id set as a flat list. It is the
// write-ahead copy: every mutation lands here before any remote echo.
type Store interface {
	Selected(ctx context.Context) ([]int, error)
	Save(ctx context.Context, ids []int) error
}
