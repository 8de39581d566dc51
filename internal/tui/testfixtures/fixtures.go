package testfixtures

import (
	"github.com/mark3labs/signup/internal/api"
	"github.com/mark3labs/signup/internal/form"
)

// ValidData returns form values that pass every step.
func ValidData() map[form.Field]string {
	return map[form.Field]string{
		form.FieldEmail:       "a@b.com",
		form.FieldPassword:    "Ab12Ab12!!",
		form.FieldFirstName:   "Jo",
		form.FieldLastName:    "Doe",
		form.FieldAddress:     "12 Main Street",
		form.FieldCountryCode: "+91",
		form.FieldPhoneNumber: "9876543210",
		form.FieldAcceptTerms: "true",
	}
}

// FixturePosts returns a small deterministic post listing.
func FixturePosts() []api.Post {
	return []api.Post{
		{
			ID:        "1",
			Image:     "https://example.com/1.png",
			FirstName: "Ada",
			LastName:  "Lovelace",
			Avatar:    "https://example.com/ada.png",
			Writeup:   "Notes on the **Analytical Engine**.",
		},
		{
			ID:        "2",
			Image:     "https://example.com/2.png",
			FirstName: "Alan",
			LastName:  "Turing",
			Avatar:    "https://example.com/alan.png",
			Writeup:   "On computable numbers.",
		},
		{
			ID:        "3",
			FirstName: "Grace",
			Writeup:   "Debugging, literally.",
		},
	}
}
