package validators

import (
	"github.com/long-kr/Project-Restaurant-Reservation/utils"
)

func HasData(s *Scope) error {
	if s.Data == nil {
		return utils.BadRequest("Request body must contain a data object")
	}
	return nil
}

// HasRequiredFields checks presence in the order given and reports the first
// missing field.
func HasRequiredFields(fields ...string) Guard {
	return func(s *Scope) error {
		for _, field := range fields {
			if !s.Has(field) {
				return utils.BadRequest("%s is required", field)
			}
		}
		return nil
	}
}

// ValidName requires a string of at least two characters after trimming.
func ValidName(field string) Guard {
	return func(s *Scope) error {
		value, ok := s.String(field)
		if !ok || len([]rune(value)) < 2 {
			return utils.BadRequest("%s must be at least 2 characters long", field)
		}
		return nil
	}
}
