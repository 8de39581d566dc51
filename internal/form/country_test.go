package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountries(t *testing.T) {
	countries := Countries()
	assert.Equal(t, []Country{
		{Region: "IN", Name: "India", Code: "+91"},
		{Region: "US", Name: "America", Code: "+1"},
	}, countries)
	assert.Equal(t, "(+91) India", countries[0].Label())
	assert.Equal(t, []string{"+91", "+1"}, CountryCodes())
}

func TestFormatPhone(t *testing.T) {
	got := FormatPhone("+91", "9876543210")
	assert.True(t, strings.HasPrefix(got, "+91 "), got)
	assert.Equal(t, "+919876543210", strings.ReplaceAll(got, " ", ""))

	assert.Equal(t, "+91", FormatPhone("+91", ""))
}
