package orders

import (
	"errors"
	"fmt"
	"hub-allocation-service/internal/domain"
	"math"
	"strings"
	"time"
)

var (
	ErrEmptyID            = errors.New("empty order id")
	ErrDuplicateID        = errors.New("duplicate order id")
	ErrUnknownDestination = errors.New("unknown destination")
	ErrInvalidWeight      = errors.New("invalid weight")
)

// Validate checks order IDs are present and unique and weights positive and
// finite. When known is
// non-nil every destination must also be one of its keys. All problems are
// returned together.
func Validate(orders []domain.Order, known []string) error {
	var valid map[string]struct{}
	if known != nil {
		valid = make(map[string]struct{}, len(known))
		for _, k := range known {
			valid[k] = struct{}{}
		}
	}

	var errs []error
	seen := make(map[string]struct{}, len(orders))
	for i, o := range orders {
		if strings.TrimSpace(o.ID) == "" {
			errs = append(errs, fmt.Errorf("order at index %d: %w", i, ErrEmptyID))
		} else if _, ok := seen[o.ID]; ok {
			errs = append(errs, fmt.Errorf("order %q: %w", o.ID, ErrDuplicateID))
		}
		seen[o.ID] = struct{}{}

		if !validWeight(o.WeightKg) {
			errs = append(errs, fmt.Errorf("order %q: %w: %v", o.ID, ErrInvalidWeight, o.WeightKg))
		}

		if valid != nil {
			if _, ok := valid[o.Destination]; !ok {
				errs = append(errs, fmt.Errorf("order %q: %w: %q", o.ID, ErrUnknownDestination, o.Destination))
			}
		}
	}

	return errors.Join(errs...)
}

// validWeight rejects zero, negative, NaN and infinite weights.
func validWeight(w float64) bool {
	return w > 0 && !math.IsInf(w, 0)
}

// DefaultDeadline is three days after now, at midnight in now's location.
func DefaultDeadline(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+3, 0, 0, 0, 0, now.Location())
}
