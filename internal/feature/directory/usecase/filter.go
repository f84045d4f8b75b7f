package usecase

import "fmt"

// Budget buckets, in rupees per year.
const (
	BudgetUnder1L = "lt1"
	Budget1To2L   = "b1_2"
	Budget2To3L   = "b2_3"
	BudgetOver3L  = "gt3"
)

// FeeRange is an inclusive fee window. A zero bound is open.
type FeeRange struct {
	Min int
	Max int
}

// BudgetRange maps a bucket name to its fee range. Empty means no budget filter.
func BudgetRange(bucket string) (*FeeRange, error) {
	switch bucket {
	case "":
		return nil, nil
	case BudgetUnder1L:
		return &FeeRange{Max: 99999}, nil
	case Budget1To2L:
		return &FeeRange{Min: 100000, Max: 200000}, nil
	case Budget2To3L:
		return &FeeRange{Min: 200000, Max: 300000}, nil
	case BudgetOver3L:
		return &FeeRange{Min: 300001}, nil
	default:
		return nil, fmt.Errorf("%w: unknown budget %q", ErrInvalidFilter, bucket)
	}
}

// CollegeFilter narrows the college list. Zero values mean "any".
type CollegeFilter struct {
	Track     string
	Budget    string
	MinRating float64
}

// CollegeQuery is the resolved form of a CollegeFilter handed to the repository.
type CollegeQuery struct {
	Track     string
	Fees      *FeeRange
	MinRating float64
}
