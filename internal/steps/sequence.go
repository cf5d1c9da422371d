// Package steps derives display state for an ordered sequence of steps and
// guards click-driven navigation between them.
//
// The current step id is owned by the caller (for example the registration
// wizard) and passed in on every call; a Sequence holds no mutable state.
package steps

import (
	stderrors "errors"
	"fmt"

	"github.com/rileyhilliard/medstock/internal/errors"
)

// ErrRejected is returned by RequestTransition when the target lies beyond
// the frontier. It is an expected outcome, not a failure.
var ErrRejected = stderrors.New("step transition rejected")

// Step is one stage of a sequence.
type Step struct {
	ID       int
	Title    string
	Subtitle string
}

// StepState is a step plus its derived state for a given current id.
// Exactly one of Completed, Active and Locked is true.
type StepState struct {
	Step
	Completed bool
	Active    bool
	Locked    bool
}

// Clickable reports whether the step can be selected directly.
func (s StepState) Clickable() bool {
	return !s.Locked
}

// Sequence is an immutable, validated list of steps.
type Sequence struct {
	steps []Step
}

// NewSequence validates that ids are positive and strictly increasing.
func NewSequence(steps []Step) (*Sequence, error) {
	if len(steps) == 0 {
		return nil, errors.New(errors.ErrSequence,
			"Step sequence is empty",
			"Define at least one step")
	}

	prev := 0
	for i, s := range steps {
		if s.ID <= 0 {
			return nil, errors.New(errors.ErrSequence,
				fmt.Sprintf("Step %d (%q) has non-positive id %d", i+1, s.Title, s.ID),
				"Step ids start at 1")
		}
		if s.ID <= prev {
			return nil, errors.New(errors.ErrSequence,
				fmt.Sprintf("Step %d (%q) has id %d after id %d", i+1, s.Title, s.ID, prev),
				"Step ids must be unique and strictly increasing")
		}
		prev = s.ID
	}

	return &Sequence{steps: append([]Step(nil), steps...)}, nil
}

// ComputeState returns the state of every step for current. It is a pure
// function of its inputs.
func (s *Sequence) ComputeState(current int) []StepState {
	states := make([]StepState, len(s.steps))
	for i, step := range s.steps {
		completed := step.ID < current
		active := step.ID == current
		states[i] = StepState{
			Step:      step,
			Completed: completed,
			Active:    active,
			Locked:    !completed && !active,
		}
	}
	return states
}

// RequestTransition handles a direct step selection. Any known step at or
// behind current is accepted and its id returned. Anything else returns
// current unchanged together with ErrRejected.
func (s *Sequence) RequestTransition(current, target int) (int, error) {
	if !s.Contains(target) || target > current {
		return current, ErrRejected
	}
	return target, nil
}

// Contains reports whether id belongs to the sequence.
func (s *Sequence) Contains(id int) bool {
	return s.index(id) >= 0
}

func (s *Sequence) index(id int) int {
	for i, step := range s.steps {
		if step.ID == id {
			return i
		}
	}
	return -1
}

// Next returns the id after id. ok is false when id is the last step or unknown.
func (s *Sequence) Next(id int) (next int, ok bool) {
	i := s.index(id)
	if i < 0 || i == len(s.steps)-1 {
		return id, false
	}
	return s.steps[i+1].ID, true
}

// Prev returns the id before id. ok is false when id is the first step or unknown.
func (s *Sequence) Prev(id int) (prev int, ok bool) {
	i := s.index(id)
	if i <= 0 {
		return id, false
	}
	return s.steps[i-1].ID, true
}

// Step returns the step with id.
func (s *Sequence) Step(id int) (Step, bool) {
	i := s.index(id)
	if i < 0 {
		return Step{}, false
	}
	return s.steps[i], true
}

// First returns the first step id.
func (s *Sequence) First() int {
	return s.steps[0].ID
}

// Last returns the last step id.
func (s *Sequence) Last() int {
	return s.steps[len(s.steps)-1].ID
}

// Len returns the number of steps.
func (s *Sequence) Len() int {
	return len(s.steps)
}

// Steps returns a copy of the steps in order.
func (s *Sequence) Steps() []Step {
	return append([]Step(nil), s.steps...)
}

// Position returns the 1-based position of id, or 0 when unknown.
func (s *Sequence) Position(id int) int {
	return s.index(id) + 1
}
