// Package state holds the wizard step state machine.
//
// Wizard is a value type: every transition returns a new Wizard and leaves the
// receiver untouched, so callers can hold on to earlier states.
package state

import (
	"errors"
	"fmt"
)

var (
	// ErrFirstStep is returned by Back on step 1.
	ErrFirstStep = errors.New("already on the first step")
	// ErrLastStep is returned by Next on the last step.
	ErrLastStep = errors.New("already on the last step")
	// ErrNotVisited is returned by JumpTo for a step that was never reached.
	ErrNotVisited = errors.New("step not visited yet")
	// ErrStepOutOfRange is returned by JumpTo for a step outside 1..Total.
	ErrStepOutOfRange = errors.New("step out of range")
)

// Wizard tracks the current step and the set of visited steps.
// Current is always a member of the visited set, and the set never shrinks.
type Wizard struct {
	current int
	total   int
	visited uint64 // bit k set => step k visited
}

// MaxSteps bounds Total so the visited set fits a single word.
const MaxSteps = 63

// NewWizard returns the initial state: step 1 with only step 1 visited.
func NewWizard(total int) (Wizard, error) {
	if total < 1 || total > MaxSteps {
		return Wizard{}, fmt.Errorf("total steps must be within 1..%d, got %d", MaxSteps, total)
	}
	return Wizard{current: 1, total: total, visited: 1 << 1}, nil
}

// Current returns the active step (1-based).
func (w Wizard) Current() int { return w.current }

// Total returns the number of steps.
func (w Wizard) Total() int { return w.total }

// IsFirst reports whether the active step is step 1.
func (w Wizard) IsFirst() bool { return w.current == 1 }

// IsLast reports whether the active step is the final step.
func (w Wizard) IsLast() bool { return w.current == w.total }

// CanSubmit reports whether submission may be attempted from this state.
func (w Wizard) CanSubmit() bool { return w.IsLast() }

// Visited reports whether step k has been reached.
func (w Wizard) Visited(k int) bool {
	if k < 1 || k > w.total {
		return false
	}
	return w.visited&(1<<uint(k)) != 0
}

// VisitedSteps returns the visited steps in ascending order.
func (w Wizard) VisitedSteps() []int {
	var out []int
	for k := 1; k <= w.total; k++ {
		if w.Visited(k) {
			out = append(out, k)
		}
	}
	return out
}

// Next advances to the following step and marks it visited.
func (w Wizard) Next() (Wizard, error) {
	if w.current >= w.total {
		return w, ErrLastStep
	}
	w.current++
	w.visited |= 1 << uint(w.current)
	return w, nil
}

// Back moves to the previous step. The visited set is unchanged.
func (w Wizard) Back() (Wizard, error) {
	if w.current <= 1 {
		return w, ErrFirstStep
	}
	w.current--
	return w, nil
}

// JumpTo makes step k current when it has been visited before.
// Otherwise the state is returned unchanged along with an error.
func (w Wizard) JumpTo(k int) (Wizard, error) {
	if k < 1 || k > w.total {
		return w, fmt.Errorf("jump to %d: %w", k, ErrStepOutOfRange)
	}
	if !w.Visited(k) {
		return w, fmt.Errorf("jump to %d: %w", k, ErrNotVisited)
	}
	w.current = k
	return w, nil
}

func (w Wizard) String() string {
	return fmt.Sprintf("step %d/%d visited=%v", w.current, w.total, w.VisitedSteps())
}
