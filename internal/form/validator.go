package form

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// patternTimeout bounds a single pattern match; the email pattern backtracks.
const patternTimeout = 100 * time.Millisecond

// FieldError is a validation failure for one field.
type FieldError struct {
	Field   Field
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError aggregates the field failures of a step (or of the whole form when Step is 0).
type ValidationError struct {
	Step   int
	Errors []*FieldError
}

func (e *ValidationError) Error() string {
	fields := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		fields[i] = string(fe.Field)
	}
	scope := "form"
	if e.Step > 0 {
		scope = fmt.Sprintf("step %d", e.Step)
	}
	return fmt.Sprintf("%s: %d invalid field(s): %s", scope, len(e.Errors), strings.Join(fields, ", "))
}

// Fields returns the invalid fields in rule order.
func (e *ValidationError) Fields() []Field {
	out := make([]Field, len(e.Errors))
	for i, fe := range e.Errors {
		out[i] = fe.Field
	}
	return out
}

type compiledRule struct {
	Rule
	re *regexp2.Regexp
}

// Validator evaluates a rule table. It is safe for concurrent use.
type Validator struct {
	rules   []*compiledRule
	byField map[Field]*compiledRule
	steps   int
}

// NewValidator compiles the patterns of rules.
func NewValidator(rules []Rule) (*Validator, error) {
	v := &Validator{byField: make(map[Field]*compiledRule, len(rules))}
	for _, r := range rules {
		if r.Field == "" {
			return nil, fmt.Errorf("rule without field")
		}
		if r.Step < 1 {
			return nil, fmt.Errorf("rule %s: step must be >= 1, got %d", r.Field, r.Step)
		}
		if _, dup := v.byField[r.Field]; dup {
			return nil, fmt.Errorf("duplicate rule for field %s", r.Field)
		}
		cr := &compiledRule{Rule: r}
		if r.Pattern != "" {
			re, err := regexp2.Compile(`^(?:`+r.Pattern+`)$`, regexp2.ECMAScript)
			if err != nil {
				return nil, fmt.Errorf("rule %s: compiling pattern: %w", r.Field, err)
			}
			re.MatchTimeout = patternTimeout
			cr.re = re
		}
		v.rules = append(v.rules, cr)
		v.byField[r.Field] = cr
		if r.Step > v.steps {
			v.steps = r.Step
		}
	}
	return v, nil
}

// MustValidator is like NewValidator but panics on error.
func MustValidator(rules []Rule) *Validator {
	v, err := NewValidator(rules)
	if err != nil {
		panic(err)
	}
	return v
}

// Default is the validator for DefaultRules.
var Default = MustValidator(DefaultRules())

// Steps returns the highest step number in the rule table.
func (v *Validator) Steps() int {
	return v.steps
}

// Rule returns the rule declared for field.
func (v *Validator) Rule(field Field) (Rule, bool) {
	cr, ok := v.byField[field]
	if !ok {
		return Rule{}, false
	}
	return cr.Rule, true
}

// StepFields returns the fields owned by step, in declaration order.
func (v *Validator) StepFields(step int) []Field {
	var out []Field
	for _, cr := range v.rules {
		if cr.Step == step {
			out = append(out, cr.Field)
		}
	}
	return out
}

// Fields returns every field in declaration order.
func (v *Validator) Fields() []Field {
	out := make([]Field, len(v.rules))
	for i, cr := range v.rules {
		out[i] = cr.Field
	}
	return out
}

// Validate checks a single value. Unknown fields are always valid.
func (v *Validator) Validate(field Field, value string) *FieldError {
	cr, ok := v.byField[field]
	if !ok {
		return nil
	}
	if cr.check(value) {
		return nil
	}
	return &FieldError{Field: field, Message: cr.Message}
}

// ValidateStep checks every field of step against data.
// It returns nil or a *ValidationError.
func (v *Validator) ValidateStep(step int, data *Data) error {
	return v.collect(step, data, func(cr *compiledRule) bool { return cr.Step == step })
}

// ValidateAll checks every field of every step.
func (v *Validator) ValidateAll(data *Data) error {
	return v.collect(0, data, func(*compiledRule) bool { return true })
}

func (v *Validator) collect(step int, data *Data, include func(*compiledRule) bool) error {
	var errs []*FieldError
	for _, cr := range v.rules {
		if !include(cr) {
			continue
		}
		if fe := v.Validate(cr.Field, data.Get(cr.Field)); fe != nil {
			errs = append(errs, fe)
		}
	}
	if len(errs) > 0 {
		return &ValidationError{Step: step, Errors: errs}
	}
	return nil
}

func (cr *compiledRule) check(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return !cr.Required
	}

	if cr.Truthy && !IsTruthy(trimmed) {
		return false
	}

	if cr.re != nil {
		ok, err := cr.re.MatchString(value)
		if err != nil || !ok {
			return false
		}
	}

	n := utf8.RuneCountInString(value)
	if cr.MinLength > 0 && n < cr.MinLength {
		return false
	}
	if cr.MaxLength > 0 && n > cr.MaxLength {
		return false
	}

	if len(cr.OneOf) > 0 && !slices.Contains(cr.OneOf, trimmed) {
		return false
	}

	return true
}

// IsTruthy reports whether s is a checked-flag value.
func IsTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "on", "yes", "y", "1":
		return true
	}
	return false
}
