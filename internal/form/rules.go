package form

// Field identifies a registration form field. Values match the JSON keys
// accepted by the submission endpoint.
type Field string

const (
	FieldEmail       Field = "email"
	FieldPassword    Field = "password"
	FieldFirstName   Field = "firstName"
	FieldLastName    Field = "lastName"
	FieldAddress     Field = "address"
	FieldCountryCode Field = "countryCode"
	FieldPhoneNumber Field = "phoneNumber"
	FieldAcceptTerms Field = "acceptTermsAndCondition"
)

// TotalSteps is the number of wizard steps the default rule table spans.
const TotalSteps = 3

var stepTitles = [TotalSteps + 1]string{"", "Account", "Personal details", "Contact"}

// StepTitle names a wizard step for headings and tabs.
func StepTitle(step int) string {
	if step < 1 || step > TotalSteps {
		return ""
	}
	return stepTitles[step]
}

// Rule declares the constraints for a single field.
// Zero values disable a constraint.
type Rule struct {
	Field     Field
	Step      int    // 1-based wizard step that owns the field
	Label     string // human-readable label, "*" suffix added by the UI when Required
	Required  bool
	Pattern   string // ECMAScript pattern, matched against the full value
	MinLength int    // in runes
	MaxLength int    // in runes
	OneOf     []string
	Truthy    bool // value must be a truthy flag ("true", "on", "yes", "1")
	Message   string
}

// Patterns are anchored when compiled.
const (
	emailPattern    = `(([^<>()[\]\\.,;:\s@"]+(\.[^<>()[\]\\.,;:\s@"]+)*)|.(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))`
	passwordPattern = `(?=(.*[A-Z]){2})(?=(.*[a-z]){2})(?=(.*\d){2})(?=(.*[\W_]){2}).{8,}`
	alphaPattern    = `[a-zA-Z]+`
	digitsPattern   = `\d+`
)

// DefaultRules returns the rule table for the three-step registration wizard.
//
//	step 1: email, password
//	step 2: firstName, lastName, address
//	step 3: countryCode, phoneNumber, acceptTermsAndCondition
func DefaultRules() []Rule {
	return []Rule{
		{
			Field:    FieldEmail,
			Step:     1,
			Label:    "Email",
			Required: true,
			Pattern:  emailPattern,
			Message:  "Must be a valid email ID",
		},
		{
			Field:    FieldPassword,
			Step:     1,
			Label:    "Password",
			Required: true,
			Pattern:  passwordPattern,
			Message:  "Must contain minimum 2 capital letters, 2 small letter, 2 numbers and 2 special characters.",
		},
		{
			Field:     FieldFirstName,
			Step:      2,
			Label:     "First Name",
			Required:  true,
			Pattern:   alphaPattern,
			MinLength: 2,
			MaxLength: 50,
			Message:   "Only alphabets are allowed. Minimum of 2 character and maximum 50.",
		},
		{
			Field:   FieldLastName,
			Step:    2,
			Label:   "Last Name",
			Pattern: alphaPattern,
			Message: "Only alphabets are allowed.",
		},
		{
			Field:     FieldAddress,
			Step:      2,
			Label:     "Address",
			Required:  true,
			MinLength: 10,
			Message:   "Minimum length 10.",
		},
		{
			Field:    FieldCountryCode,
			Step:     3,
			Label:    "Country code",
			Required: true,
			OneOf:    CountryCodes(),
			Message:  "This field is required!",
		},
		{
			Field:     FieldPhoneNumber,
			Step:      3,
			Label:     "Phone number",
			Required:  true,
			Pattern:   digitsPattern,
			MinLength: 10,
			MaxLength: 10,
			Message:   "Only 10 digit numeric phone number is allowed.",
		},
		{
			Field:    FieldAcceptTerms,
			Step:     3,
			Label:    "I accept all terms and conditions",
			Required: true,
			Truthy:   true,
			Message:  "This field is required!",
		},
	}
}
