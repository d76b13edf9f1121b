package allocation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"splitnest/internal/domain/entities"
)

var (
	ErrNegativeAmount  = errors.New("allocation amount is negative")
	ErrDuplicateMember = errors.New("duplicate member in allocation set")
	ErrMissingMembers  = errors.New("allocation set is missing house members")
	ErrUnknownMembers  = errors.New("allocation set includes non-members")
)

// Epsilon is the cent-level tolerance for the sum check.
var Epsilon = decimal.New(1, -2)

// Result is the outcome of validating an allocation set against the rent
// total. Difference is total minus the allocated sum: positive means the set
// is under-allocated, negative means over-allocated.
type Result struct {
	OK         bool
	Difference decimal.Decimal
}

// MismatchError reports a sum mismatch rejected at submission. It carries the
// signed difference so callers can correct the set without re-deriving it.
type MismatchError struct {
	Difference decimal.Decimal
}

func (e *MismatchError) Error() string {
	if e.Difference.IsNegative() {
		return fmt.Sprintf("allocations over rent total by $%s", e.Difference.Neg().StringFixed(2))
	}
	return fmt.Sprintf("allocations under rent total by $%s", e.Difference.StringFixed(2))
}

// Sum returns the total of the allocation amounts.
func Sum(allocs []entities.Allocation) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range allocs {
		sum = sum.Add(a.Amount)
	}
	return sum
}

// Remaining returns total minus the allocated sum. Used as the advisory
// live remainder while a draft is being edited.
func Remaining(allocs []entities.Allocation, total decimal.Decimal) decimal.Decimal {
	return total.Sub(Sum(allocs))
}

// CheckAmounts verifies the structural rules that hold even for drafts:
// no negative amounts and at most one allocation per member.
func CheckAmounts(allocs []entities.Allocation) error {
	seen := make(map[string]struct{}, len(allocs))
	for _, a := range allocs {
		if a.Amount.IsNegative() {
			return ErrNegativeAmount
		}
		if _, ok := seen[a.UserID]; ok {
			return ErrDuplicateMember
		}
		seen[a.UserID] = struct{}{}
	}
	return nil
}

// Validate checks an allocation set against the rent total and the house
// roster. Pure: no side effects.
//
// Member-set or amount problems are returned as errors; a sum mismatch is
// reported through Result so callers can surface the difference either as a
// hint (drafting) or a hard rejection (submission).
func Validate(allocs []entities.Allocation, total decimal.Decimal, memberIDs []string) (Result, error) {
	if err := CheckAmounts(allocs); err != nil {
		return Result{}, err
	}

	members := make(map[string]struct{}, len(memberIDs))
	for _, id := range memberIDs {
		members[id] = struct{}{}
	}
	for _, a := range allocs {
		if _, ok := members[a.UserID]; !ok {
			return Result{}, ErrUnknownMembers
		}
	}
	if len(allocs) < len(members) {
		return Result{}, ErrMissingMembers
	}

	diff := Remaining(allocs, total)
	return Result{
		OK:         diff.Abs().LessThan(Epsilon),
		Difference: diff,
	}, nil
}
