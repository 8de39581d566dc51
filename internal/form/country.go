package form

import (
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Country is a selectable dialing code.
type Country struct {
	Region string // ISO 3166-1 alpha-2
	Name   string
	Code   string // "+91"
}

// Label renders the option as shown in the country select.
func (c Country) Label() string {
	return "(" + c.Code + ") " + c.Name
}

var countryRegions = []struct {
	region string
	name   string
}{
	{"IN", "India"},
	{"US", "America"},
}

// Countries returns the selectable dialing codes in display order.
func Countries() []Country {
	out := make([]Country, 0, len(countryRegions))
	for _, cr := range countryRegions {
		code := phonenumbers.GetCountryCodeForRegion(cr.region)
		if code == 0 {
			continue
		}
		out = append(out, Country{
			Region: cr.region,
			Name:   cr.name,
			Code:   "+" + strconv.Itoa(code),
		})
	}
	return out
}

// CountryCodes returns the enumerated values accepted for FieldCountryCode.
func CountryCodes() []string {
	countries := Countries()
	out := make([]string, len(countries))
	for i, c := range countries {
		out[i] = c.Code
	}
	return out
}

// FormatPhone renders a dialing code and national number in international
// format. It falls back to plain concatenation when the number does not parse.
func FormatPhone(countryCode, national string) string {
	countryCode = strings.TrimSpace(countryCode)
	national = strings.TrimSpace(national)
	if national == "" {
		return countryCode
	}
	num, err := phonenumbers.Parse(countryCode+national, "")
	if err != nil {
		return strings.TrimSpace(countryCode + " " + national)
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}
