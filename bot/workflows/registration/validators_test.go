package registration

import (
	"testing"
	"time"

	"OchiqMuloqot/bot/workflow"
	"OchiqMuloqot/internal/i18n"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestDateValidator(t *testing.T) {
	validate := Date(fixedNow, i18n.KeyErrDateOfBirth)

	tests := []struct {
		name   string
		input  string
		want   string
		reason string
	}{
		{name: "dots", input: "15.03.1990", want: "15.03.1990"},
		{name: "slashes", input: "15/03/1990", want: "15.03.1990"},
		{name: "hyphens", input: "15-03-1990", want: "15.03.1990"},
		{name: "single digits padded", input: "5.3.1990", want: "05.03.1990"},
		{name: "surrounding spaces", input: "  15.03.1990  ", want: "15.03.1990"},
		{name: "leap day", input: "29.02.2000", want: "29.02.2000"},
		{name: "today", input: "01.06.2025", want: "01.06.2025"},
		{name: "impossible day", input: "31.02.1990", reason: workflow.ReasonBadDate},
		{name: "non-leap february", input: "29.02.2001", reason: workflow.ReasonBadDate},
		{name: "year first", input: "1990-03-15", reason: workflow.ReasonBadDate},
		{name: "two digit year", input: "15.03.90", reason: workflow.ReasonBadDate},
		{name: "not a date", input: "pretty soon", reason: workflow.ReasonBadDate},
		{name: "empty", input: "", reason: workflow.ReasonBadDate},
		{name: "tomorrow", input: "02.06.2025", reason: workflow.ReasonOutOfRange},
		{name: "far future", input: "01.01.2030", reason: workflow.ReasonOutOfRange},
		{name: "older than anyone", input: "31.05.1905", reason: workflow.ReasonOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, verr := validate(workflow.TextInput(tt.input))
			if tt.reason != "" {
				if verr == nil {
					t.Fatalf("expected rejection of %q, got %q", tt.input, got)
				}
				if verr.Reason != tt.reason {
					t.Fatalf("expected reason %q, got %q", tt.reason, verr.Reason)
				}
				return
			}
			if verr != nil {
				t.Fatalf("unexpected rejection of %q: %s", tt.input, verr.Reason)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDateValidatorErrorKey(t *testing.T) {
	validate := Date(fixedNow, i18n.KeyErrDateOfBirth)
	_, verr := validate(workflow.TextInput("not a date"))
	if verr == nil || verr.Key != i18n.KeyErrDateOfBirth {
		t.Fatalf("expected the date error key, got %+v", verr)
	}
}

func TestPhoneValidator(t *testing.T) {
	validate := Phone(i18n.KeyErrPhone)

	tests := []struct {
		name string
		in   workflow.Input
		want string
		bad  bool
	}{
		{name: "typed international", in: workflow.TextInput("+998901234567"), want: "+998901234567"},
		{name: "typed with separators", in: workflow.TextInput("+998 90 123-45-67"), want: "+998901234567"},
		{name: "typed without plus", in: workflow.TextInput("998901234567"), want: "+998901234567"},
		{name: "shared contact", in: workflow.ContactInput("998901234567"), want: "+998901234567"},
		{name: "contact wins over text", in: workflow.Input{Text: "not a number", Phone: "+998 90 123 45 67"}, want: "+998901234567"},
		{name: "seven digits minimum", in: workflow.TextInput("1234567"), want: "+1234567"},
		{name: "too short", in: workflow.TextInput("123456"), bad: true},
		{name: "too long", in: workflow.TextInput("1234567890123456"), bad: true},
		{name: "letters", in: workflow.TextInput("call me maybe"), bad: true},
		{name: "letter among digits", in: workflow.TextInput("+998 9O 123 45 67"), bad: true},
		{name: "empty", in: workflow.TextInput(""), bad: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, verr := validate(tt.in)
			if tt.bad {
				if verr == nil {
					t.Fatalf("expected rejection, got %q", got)
				}
				if verr.Reason != workflow.ReasonBadPhone {
					t.Fatalf("expected reason %q, got %q", workflow.ReasonBadPhone, verr.Reason)
				}
				return
			}
			if verr != nil {
				t.Fatalf("unexpected rejection: %s", verr.Reason)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTextValidator(t *testing.T) {
	validate := Text(2, 5, i18n.KeyErrFullName)

	tests := []struct {
		name   string
		input  string
		want   string
		reason string
	}{
		{name: "trimmed", input: "  ab  ", want: "ab"},
		{name: "at max", input: "abcde", want: "abcde"},
		{name: "cyrillic counts runes", input: "Ёжик", want: "Ёжик"},
		{name: "below min", input: "a", reason: workflow.ReasonEmptyText},
		{name: "only spaces", input: "   ", reason: workflow.ReasonEmptyText},
		{name: "above max", input: "abcdef", reason: workflow.ReasonTooLong},
		{name: "cyrillic above max", input: "Ёжики!", reason: workflow.ReasonTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, verr := validate(workflow.TextInput(tt.input))
			if tt.reason != "" {
				if verr == nil {
					t.Fatalf("expected rejection of %q, got %q", tt.input, got)
				}
				if verr.Reason != tt.reason {
					t.Fatalf("expected reason %q, got %q", tt.reason, verr.Reason)
				}
				return
			}
			if verr != nil {
				t.Fatalf("unexpected rejection of %q: %s", tt.input, verr.Reason)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestChoiceValidatorStoresCanonicalValue(t *testing.T) {
	validate := Choice(Regions(), i18n.KeyErrChoice)

	got, verr := validate(workflow.TextInput("ГОРОД ТАШКЕНТ"))
	if verr != nil {
		t.Fatalf("unexpected rejection: %s", verr.Reason)
	}
	if got != "Toshkent shahar" {
		t.Fatalf("expected the canonical value, got %q", got)
	}

	if _, verr := validate(workflow.TextInput("Atlantis")); verr == nil {
		t.Fatal("expected rejection of an unknown region")
	} else if verr.Reason != workflow.ReasonNotInChoiceSet {
		t.Fatalf("expected reason %q, got %q", workflow.ReasonNotInChoiceSet, verr.Reason)
	}
}
