package validate

import (
	"fmt"
	"strings"
)

// Required checks that a string field is non-empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "is required",
		},
	}
}

// MaxLen checks that a string does not exceed the given length in bytes.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters", max),
		},
	}
}

// InList checks membership in a closed set of allowed values.
func InList[T comparable](field string, value T, allowed []T) Rule {
	return Rule{
		Check: func() bool {
			for _, v := range allowed {
				if value == v {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %v", allowed),
		},
	}
}

// TimeOfDay checks that a string is a valid 24-hour "HH:MM" time of day.
func TimeOfDay(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if len(value) != 5 || value[2] != ':' {
				return false
			}
			h, m := value[:2], value[3:]
			hour, ok := atoi2(h)
			if !ok || hour > 23 {
				return false
			}
			minute, ok := atoi2(m)
			if !ok || minute > 59 {
				return false
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid time of day in HH:MM format",
		},
	}
}

// atoi2 parses exactly two ASCII digits.
func atoi2(s string) (int, bool) {
	if len(s) != 2 {
		return 0, false
	}
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}
