package form

import "strings"

// Data accumulates field values across wizard steps.
type Data struct {
	Email       string `yaml:"email"`
	Password    string `yaml:"password"`
	FirstName   string `yaml:"firstName"`
	LastName    string `yaml:"lastName"`
	Address     string `yaml:"address"`
	CountryCode string `yaml:"countryCode"`
	PhoneNumber string `yaml:"phoneNumber"`
	AcceptTerms bool   `yaml:"acceptTermsAndCondition"`
}

// Payload is the submission body. It carries every field except the
// terms-acceptance flag.
type Payload struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Address     string `json:"address"`
	CountryCode string `json:"countryCode"`
	PhoneNumber string `json:"phoneNumber"`
}

// Get returns the value of field as a string. The terms flag reads "true" or "".
func (d *Data) Get(field Field) string {
	switch field {
	case FieldEmail:
		return d.Email
	case FieldPassword:
		return d.Password
	case FieldFirstName:
		return d.FirstName
	case FieldLastName:
		return d.LastName
	case FieldAddress:
		return d.Address
	case FieldCountryCode:
		return d.CountryCode
	case FieldPhoneNumber:
		return d.PhoneNumber
	case FieldAcceptTerms:
		if d.AcceptTerms {
			return "true"
		}
		return ""
	}
	return ""
}

// Set stores value for field and reports whether the field is known.
func (d *Data) Set(field Field, value string) bool {
	switch field {
	case FieldEmail:
		d.Email = value
	case FieldPassword:
		d.Password = value
	case FieldFirstName:
		d.FirstName = value
	case FieldLastName:
		d.LastName = value
	case FieldAddress:
		d.Address = value
	case FieldCountryCode:
		d.CountryCode = value
	case FieldPhoneNumber:
		d.PhoneNumber = value
	case FieldAcceptTerms:
		d.AcceptTerms = IsTruthy(value)
	default:
		return false
	}
	return true
}

// Payload builds the submission body, dropping the terms flag. The country
// code is trimmed the same way the validator sees it.
func (d *Data) Payload() Payload {
	return Payload{
		Email:       d.Email,
		Password:    d.Password,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Address:     d.Address,
		CountryCode: strings.TrimSpace(d.CountryCode),
		PhoneNumber: d.PhoneNumber,
	}
}
