package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"starwarsblog/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateNonEmptyString checks that value is a string with content
// once surrounding whitespace is removed, returning the trimmed string.
func ValidateNonEmptyString(field string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", domain.NewValidationError(field, "must be a string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", domain.NewValidationError(field, "must not be empty")
	}
	return s, nil
}

// RequireStrings validates names in order and stops at the first failure.
func RequireStrings(fields map[string]any, names ...string) (map[string]string, error) {
	out := make(map[string]string, len(names))
	for _, name := range names {
		v, err := ValidateNonEmptyString(name, fields[name])
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}

// Email checks the address format.
func Email(field, value string) error {
	if err := validate.Var(value, "required,email"); err != nil {
		return domain.NewValidationError(field, "must be a valid email")
	}
	return nil
}
