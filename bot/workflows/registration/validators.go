package registration

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"OchiqMuloqot/bot/workflow"
	"OchiqMuloqot/entity"
)

// maxAgeYears bounds how far in the past a date of birth may lie.
const maxAgeYears = 120

var dateRe = regexp.MustCompile(`^(\d{1,2})[./-](\d{1,2})[./-](\d{4})$`)

// Choice builds a validator that resolves input against a fixed choice
// set, matching the canonical value or any label case-insensitively.
// The stored value is always the canonical one.
func Choice(set []entity.Choice, errKey string) workflow.Validator {
	return func(in workflow.Input) (string, *workflow.ValidationError) {
		if c, ok := entity.FindChoice(set, in.Text); ok {
			return c.Value, nil
		}
		return "", workflow.Invalid(workflow.ReasonNotInChoiceSet, errKey)
	}
}

// Text builds a validator for trimmed free text of min..max characters.
func Text(min, max int, errKey string) workflow.Validator {
	return func(in workflow.Input) (string, *workflow.ValidationError) {
		text := strings.TrimSpace(in.Text)
		n := utf8.RuneCountInString(text)
		if n < min {
			return "", workflow.Invalid(workflow.ReasonEmptyText, errKey)
		}
		if n > max {
			return "", workflow.Invalid(workflow.ReasonTooLong, errKey)
		}
		return text, nil
	}
}

// Date builds the date-of-birth validator. It accepts dd.mm.yyyy with
// "." "/" or "-" separators, requires a calendar-valid date, and bounds
// it to (now-120y, now]. The stored value is normalized to dd.mm.yyyy.
func Date(now func() time.Time, errKey string) workflow.Validator {
	return func(in workflow.Input) (string, *workflow.ValidationError) {
		m := dateRe.FindStringSubmatch(strings.TrimSpace(in.Text))
		if m == nil {
			return "", workflow.Invalid(workflow.ReasonBadDate, errKey)
		}

		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])

		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
			return "", workflow.Invalid(workflow.ReasonBadDate, errKey)
		}

		ref := now().UTC()
		if t.After(ref) {
			return "", workflow.Invalid(workflow.ReasonOutOfRange, errKey)
		}
		if t.Before(ref.AddDate(-maxAgeYears, 0, 0)) {
			return "", workflow.Invalid(workflow.ReasonOutOfRange, errKey)
		}

		return fmt.Sprintf("%02d.%02d.%04d", day, month, year), nil
	}
}

// Phone builds the phone validator. A shared contact wins; otherwise
// the typed text must be digits with an optional leading "+", spaces
// and hyphens allowed as separators. The stored value is "+" plus 7 to
// 15 digits.
func Phone(errKey string) workflow.Validator {
	return func(in workflow.Input) (string, *workflow.ValidationError) {
		raw := in.Phone
		if raw == "" {
			raw = in.Text
		}
		if phone, ok := normalizePhone(raw); ok {
			return phone, nil
		}
		return "", workflow.Invalid(workflow.ReasonBadPhone, errKey)
	}
}

func normalizePhone(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "+")
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, s)

	if len(s) < 7 || len(s) > 15 {
		return "", false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return "+" + s, true
}
