package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() Submission {
	return Submission{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Message: "I would like to talk about an engine.",
	}
}

func TestValidateAcceptsValidSubmission(t *testing.T) {
	assert.Nil(t, Validate(validSubmission()))

	withCompany := validSubmission()
	withCompany.Company = "Analytical Engines Ltd"
	assert.Nil(t, Validate(withCompany))
}

func TestValidateMessageLengthBoundary(t *testing.T) {
	sub := validSubmission()

	sub.Message = strings.Repeat("x", 9)
	errs := Validate(sub)
	require.NotNil(t, errs)
	assert.Equal(t, "Message must be at least 10 characters", errs["message"])

	sub.Message = strings.Repeat("x", 10)
	assert.Nil(t, Validate(sub))

	sub.Message = strings.Repeat("x", 5001)
	errs = Validate(sub)
	require.NotNil(t, errs)
	assert.Equal(t, "Message too long", errs["message"])
}

func TestValidateNameRules(t *testing.T) {
	sub := validSubmission()

	sub.Name = "A"
	errs := Validate(sub)
	require.NotNil(t, errs)
	assert.Equal(t, "Name must be at least 2 characters", errs["name"])

	sub.Name = ""
	errs = Validate(sub)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "name")

	sub.Name = strings.Repeat("n", 101)
	errs = Validate(sub)
	require.NotNil(t, errs)
	assert.Equal(t, "Name too long", errs["name"])
}

func TestValidateEmailRules(t *testing.T) {
	sub := validSubmission()

	sub.Email = "not-an-address"
	errs := Validate(sub)
	require.NotNil(t, errs)
	assert.Equal(t, "Invalid email address", errs["email"])

	sub.Email = strings.Repeat("a", 250) + "@example.com"
	errs = Validate(sub)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "email")
}

func TestValidateCompanyOptionalButBounded(t *testing.T) {
	sub := validSubmission()
	sub.Company = strings.Repeat("c", 101)

	errs := Validate(sub)
	require.NotNil(t, errs)
	assert.Equal(t, "Company too long", errs["company"])
}

func TestValidateReportsAllViolations(t *testing.T) {
	errs := Validate(Submission{Name: "x", Email: "bad", Message: "short"})
	require.NotNil(t, errs)
	assert.Len(t, errs, 3)
}
