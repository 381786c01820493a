package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Student identifier pattern - alphanumeric, 4 to 16 characters
	StudentIDPattern = `^[A-Za-z0-9]{4,16}$`

	// Course code pattern - letters followed by digits, e.g. CS101
	CourseCodePattern = `^[A-Z]{2,6}\d{3,4}$`
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	StudentID  *regexp.Regexp
	CourseCode *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	StudentID:  regexp.MustCompile(StudentIDPattern),
	CourseCode: regexp.MustCompile(CourseCodePattern),
}

// Grades lists the recognized grade vocabulary.
var Grades = []string{"A+", "A", "B+", "B", "C+", "C", "D", "F"}

// IsValidGrade reports whether grade belongs to the recognized grade vocabulary.
func IsValidGrade(grade string) bool {
	for _, g := range Grades {
		if grade == g {
			return true
		}
	}
	return false
}

// GradeRule is a validator.Func restricting a string field to the grade vocabulary.
// Registered under the "grade" tag so request DTOs can declare binding:"required,grade".
func GradeRule(fl validator.FieldLevel) bool {
	return IsValidGrade(fl.Field().String())
}

// RegisterRules registers the custom validation rules on the given validator engine.
func RegisterRules(v *validator.Validate) error {
	return v.RegisterValidation("grade", GradeRule)
}
