package form

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func validData() *Data {
	return &Data{
		Email:       "a@b.com",
		Password:    "Ab12Ab12!!",
		FirstName:   "Jane",
		LastName:    "Doe",
		Address:     "221B Baker Street",
		CountryCode: "+91",
		PhoneNumber: "9876543210",
		AcceptTerms: true,
	}
}

func TestData_GetSet(t *testing.T) {
	var d Data
	for _, f := range Default.Fields() {
		require.True(t, d.Set(f, "true"), f)
	}
	assert.Equal(t, "true", d.Get(FieldEmail))
	assert.True(t, d.AcceptTerms)
	assert.Equal(t, "true", d.Get(FieldAcceptTerms))

	d.Set(FieldAcceptTerms, "")
	assert.False(t, d.AcceptTerms)
	assert.Equal(t, "", d.Get(FieldAcceptTerms))

	assert.False(t, d.Set(Field("nickname"), "x"))
	assert.Equal(t, "", d.Get(Field("nickname")))
}

func TestPayload_TrimsCountryCode(t *testing.T) {
	d := validData()
	d.Set(FieldCountryCode, " +1 ")
	require.NoError(t, Default.ValidateStep(3, d))

	assert.Equal(t, "+1", d.Payload().CountryCode)
	assert.Equal(t, " +1 ", d.CountryCode, "stored value is left as entered")
}

func TestPayload_OmitsTermsFlag(t *testing.T) {
	d := validData()

	body, err := json.Marshal(d.Payload())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.NotContains(t, decoded, string(FieldAcceptTerms))
	assert.Len(t, decoded, 7)
	for _, f := range Default.Fields() {
		if f == FieldAcceptTerms {
			continue
		}
		assert.Equal(t, d.Get(f), decoded[string(f)], f)
	}
}

func TestData_YAML(t *testing.T) {
	src := `
email: a@b.com
password: Ab12Ab12!!
firstName: Jane
address: 221B Baker Street
countryCode: "+1"
phoneNumber: "1234567890"
acceptTermsAndCondition: true
`
	var d Data
	require.NoError(t, yaml.NewDecoder(strings.NewReader(src)).Decode(&d))

	assert.Equal(t, "+1", d.CountryCode)
	assert.Equal(t, "1234567890", d.PhoneNumber)
	assert.True(t, d.AcceptTerms)
	assert.NoError(t, Default.ValidateAll(&d))
}
