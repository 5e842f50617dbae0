// Package validation evaluates declarative request schemas and collects
// every violated rule, so a response can report all problems at once.
package validation

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"job_hunter/internal/api"
)

// validate is the shared validator instance. Rules are evaluated one Var
// call per rule rather than as a combined tag: the combined form stops at
// the first failing tag of a field, which would hide later violations.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// passwordchars matches the product password policy: at least one
	// uppercase letter, one lowercase letter and one digit.
	_ = v.RegisterValidation("passwordchars", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return strings.ContainsFunc(s, unicode.IsUpper) &&
			strings.ContainsFunc(s, unicode.IsLower) &&
			strings.ContainsFunc(s, unicode.IsDigit)
	})

	return v
}

// Rule pairs a validator tag with the product-facing message reported when
// the tag fails.
type Rule struct {
	Tag     string
	Message string
}

// R is a shorthand constructor for a Rule.
func R(tag, message string) Rule {
	return Rule{Tag: tag, Message: message}
}

// FieldRules binds a field path and value to the rules it must satisfy.
type FieldRules struct {
	Path  string
	Value any
	Rules []Rule
}

// Field declares the rules for one request field.
func Field(path string, value any, rules ...Rule) FieldRules {
	return FieldRules{Path: path, Value: value, Rules: rules}
}

// Validate evaluates every rule of every field and returns the full list
// of violations. An empty result means the request body is valid.
func Validate(fields ...FieldRules) []api.Violation {
	var violations []api.Violation
	for _, f := range fields {
		for _, r := range f.Rules {
			if err := validate.Var(f.Value, r.Tag); err != nil {
				violations = append(violations, api.Violation{Path: f.Path, Message: r.Message})
			}
		}
	}
	return violations
}

// PasswordRules is the compound password policy shared by register,
// change-password and reset-password. Each rule reports independently.
func PasswordRules() []Rule {
	return []Rule{
		R("required", "Password is required"),
		R("omitempty,min=6", "Password must be at least 6 characters"),
		R("omitempty,max=20", "Password must be less than 20 characters"),
		R("omitempty,passwordchars", "Password must contain at least one uppercase letter, one lowercase letter, and one number"),
	}
}
