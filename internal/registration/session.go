// Package registration binds the wizard state machine to the form data and
// its validation errors, and drives the final submission.
package registration

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mark3labs/signup/internal/form"
	"github.com/mark3labs/signup/internal/logger"
	"github.com/mark3labs/signup/internal/state"
)

var (
	// ErrNotLastStep is returned by Submit before the final step is reached.
	ErrNotLastStep = errors.New("submission is only allowed from the last step")
	// ErrSubmitInFlight is returned by Submit while a previous submission is pending.
	ErrSubmitInFlight = errors.New("submission already in progress")
	// ErrCompleted is returned by mutating calls after a successful submission.
	ErrCompleted = errors.New("registration already submitted")
)

// Submitter delivers the finished payload to the remote endpoint.
type Submitter interface {
	Submit(ctx context.Context, payload form.Payload) error
}

// Session is one pass through the registration wizard.
//
// All methods except Submit are expected to run on the UI goroutine; Submit may
// block on the network and therefore only holds the lock around bookkeeping.
type Session struct {
	mu        sync.Mutex
	validator *form.Validator
	wizard    state.Wizard
	data      form.Data
	errs      map[form.Field]*form.FieldError
	inFlight  bool
	completed bool
}

// Option configures a Session.
type Option func(*Session)

// WithValidator overrides the default rule table.
func WithValidator(v *form.Validator) Option {
	return func(s *Session) { s.validator = v }
}

// WithDefaults pre-fills field values without validating them.
func WithDefaults(values map[form.Field]string) Option {
	return func(s *Session) {
		for f, v := range values {
			s.data.Set(f, v)
		}
	}
}

// New starts a session on step 1.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		validator: form.Default,
		errs:      make(map[form.Field]*form.FieldError),
	}
	for _, opt := range opts {
		opt(s)
	}
	w, err := state.NewWizard(s.validator.Steps())
	if err != nil {
		return nil, fmt.Errorf("creating wizard: %w", err)
	}
	s.wizard = w
	return s, nil
}

// Validator returns the rule table in use.
func (s *Session) Validator() *form.Validator {
	return s.validator
}

// State returns a snapshot of the wizard state.
func (s *Session) State() state.Wizard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wizard
}

// Data returns a copy of the collected values.
func (s *Session) Data() form.Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// Value returns the current value of field.
func (s *Session) Value(field form.Field) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Get(field)
}

// Error returns the current validation error for field, or nil.
func (s *Session) Error(field form.Field) *form.FieldError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errs[field]
}

// Errors returns a copy of the current field errors.
func (s *Session) Errors() map[form.Field]*form.FieldError {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[form.Field]*form.FieldError, len(s.errs))
	for f, fe := range s.errs {
		out[f] = fe
	}
	return out
}

// Submitting reports whether a submission is in flight.
func (s *Session) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Completed reports whether the registration was submitted successfully.
func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

// Set stores value for field and re-validates that field alone.
// It returns the resulting field error, if any.
func (s *Session) Set(field form.Field, value string) *form.FieldError {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return nil
	}
	if !s.data.Set(field, value) {
		return nil
	}
	return s.validateLocked(field)
}

// ValidateStep validates every field of step, updating the error set.
func (s *Session) ValidateStep(step int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validateStepLocked(step)
}

// Next validates the current step and advances when it passes. On failure the
// step is unchanged and a *form.ValidationError is returned.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return ErrCompleted
	}
	if err := s.validateStepLocked(s.wizard.Current()); err != nil {
		logger.Debug("next rejected on step %d: %v", s.wizard.Current(), err)
		return err
	}
	next, err := s.wizard.Next()
	if err != nil {
		return err
	}
	s.wizard = next
	logger.Debug("wizard advanced: %s", s.wizard)
	return nil
}

// Back moves to the previous step without validating.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return ErrCompleted
	}
	prev, err := s.wizard.Back()
	if err != nil {
		return err
	}
	s.wizard = prev
	return nil
}

// JumpTo activates a previously visited step. Unvisited steps are a no-op
// reported through the returned error.
func (s *Session) JumpTo(step int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return ErrCompleted
	}
	w, err := s.wizard.JumpTo(step)
	if err != nil {
		return err
	}
	s.wizard = w
	return nil
}

// BeginSubmit checks that submission may proceed and marks it in flight.
// It returns the payload to send. Every successful BeginSubmit must be
// followed by exactly one FinishSubmit.
func (s *Session) BeginSubmit() (form.Payload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.completed:
		return form.Payload{}, ErrCompleted
	case s.inFlight:
		return form.Payload{}, ErrSubmitInFlight
	case !s.wizard.CanSubmit():
		return form.Payload{}, ErrNotLastStep
	}

	var verr *form.ValidationError
	for step := 1; step <= s.wizard.Total(); step++ {
		if err := s.validateStepLocked(step); err != nil {
			var stepErr *form.ValidationError
			if errors.As(err, &stepErr) {
				if verr == nil {
					verr = &form.ValidationError{}
				}
				verr.Errors = append(verr.Errors, stepErr.Errors...)
			}
		}
	}
	if verr != nil {
		return form.Payload{}, verr
	}

	s.inFlight = true
	return s.data.Payload(), nil
}

// FinishSubmit records the outcome of a submission started by BeginSubmit.
// On success the collected data is discarded; on failure it is kept for a retry.
func (s *Session) FinishSubmit(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inFlight = false
	if err != nil {
		return
	}
	s.completed = true
	s.data = form.Data{}
	s.errs = make(map[form.Field]*form.FieldError)
}

// Submit validates the whole form from the last step and hands the payload to
// sub exactly once.
func (s *Session) Submit(ctx context.Context, sub Submitter) error {
	payload, err := s.BeginSubmit()
	if err != nil {
		return err
	}

	err = sub.Submit(ctx, payload)
	s.FinishSubmit(err)
	if err != nil {
		logger.Warn("submission failed: %v", err)
		return fmt.Errorf("submitting registration: %w", err)
	}
	logger.Info("registration submitted for %s", payload.Email)
	return nil
}

func (s *Session) validateLocked(field form.Field) *form.FieldError {
	fe := s.validator.Validate(field, s.data.Get(field))
	if fe == nil {
		delete(s.errs, field)
		return nil
	}
	s.errs[field] = fe
	return fe
}

func (s *Session) validateStepLocked(step int) error {
	for _, f := range s.validator.StepFields(step) {
		s.validateLocked(f)
	}
	return s.validator.ValidateStep(step, &s.data)
}
