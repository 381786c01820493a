package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidGrade(t *testing.T) {
	for _, grade := range Grades {
		assert.True(t, IsValidGrade(grade), "grade %q should be recognized", grade)
	}

	for _, grade := range []string{"", "E", "a", "A-", "B-", "AA", "Pass", " A"} {
		assert.False(t, IsValidGrade(grade), "grade %q should be rejected", grade)
	}
}

func TestGradeRuleRegistration(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterRules(v))

	type payload struct {
		Grade string `validate:"required,grade"`
	}

	assert.NoError(t, v.Struct(payload{Grade: "B+"}))
	assert.Error(t, v.Struct(payload{Grade: "Z"}))
	assert.Error(t, v.Struct(payload{}))
}

func TestStudentIDPattern(t *testing.T) {
	valid := []string{"S1001", "abcd", "A1B2C3D4E5F6G7H8"}
	invalid := []string{"abc", "has space", "toolongidentifier", "S-1001", ""}

	for _, id := range valid {
		assert.True(t, CompiledPatterns.StudentID.MatchString(id), "id %q should match", id)
	}
	for _, id := range invalid {
		assert.False(t, CompiledPatterns.StudentID.MatchString(id), "id %q should not match", id)
	}
}

func TestCourseCodePattern(t *testing.T) {
	valid := []string{"CS101", "MATH201", "PHYS1001"}
	invalid := []string{"cs101", "C101", "CS", "CS10", "CS10101", "101CS"}

	for _, code := range valid {
		assert.True(t, CompiledPatterns.CourseCode.MatchString(code), "code %q should match", code)
	}
	for _, code := range invalid {
		assert.False(t, CompiledPatterns.CourseCode.MatchString(code), "code %q should not match", code)
	}
}

func TestEmailPattern(t *testing.T) {
	valid := []string{"ada@example.com", "ada.lovelace+cs@uni.edu"}
	invalid := []string{"not-an-email", "@example.com", "ada@", "ada@example"}

	for _, email := range valid {
		assert.True(t, CompiledPatterns.Email.MatchString(email), "email %q should match", email)
	}
	for _, email := range invalid {
		assert.False(t, CompiledPatterns.Email.MatchString(email), "email %q should not match", email)
	}
}
