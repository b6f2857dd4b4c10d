package portal

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type contactLike struct {
	Email   string `validate:"required,email"`
	Name    string `validate:"required,min=2"`
	Message string `validate:"required,min=20"`
}

func TestValidator_PassesAndRejects(t *testing.T) {
	v := GetDefaultValidator()

	ok, err := v.Passes(&contactLike{
		Email:   "jane@example.com",
		Name:    "Jane",
		Message: "I would like a quote for a new site.",
	})

	if err != nil || !ok {
		t.Fatalf("expected pass got %v %v", ok, err)
	}

	invalid := &contactLike{Email: "bad", Name: "J", Message: "short"}

	if ok, err := v.Passes(invalid); ok || err == nil {
		t.Fatalf("expected fail")
	}

	errs := v.GetErrors()
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %v", errs)
	}

	if errs["email"] != "Please enter a valid email address" {
		t.Fatalf("unexpected email message: %v", errs["email"])
	}

	if errs["name"] != "Name must be at least 2 characters" {
		t.Fatalf("unexpected name message: %v", errs["name"])
	}

	if v.GetErrorsAsJson() == "" {
		t.Fatalf("json empty")
	}
}

func TestValidator_Rejects(t *testing.T) {
	v := GetDefaultValidator()

	reject, _ := v.Rejects(&contactLike{})

	if !reject {
		t.Fatalf("expected reject")
	}
}

func TestValidator_CheckReturnsOwnErrors(t *testing.T) {
	v := GetDefaultValidator()

	errs, err := v.Check(&contactLike{Email: "jane@example.com", Name: "Jane", Message: "x"})
	if err == nil {
		t.Fatalf("expected error")
	}

	if len(errs) != 1 || errs["message"] == nil {
		t.Fatalf("unexpected errors %v", errs)
	}

	errs, err = v.Check(&contactLike{Email: "jane@example.com", Name: "Jane", Message: "a long enough message here"})
	if err != nil || len(errs) != 0 {
		t.Fatalf("expected clean check, got %v %v", errs, err)
	}
}

type cronConfig struct {
	Spec string `validate:"cron"`
}

func TestCronValidation(t *testing.T) {
	v := MakeValidatorFrom(validator.New(validator.WithRequiredStructEnabled()))

	for _, spec := range []string{"@every 5s", "0 3 * * *", "*/5 * * * * *"} {
		if ok, err := v.Passes(cronConfig{Spec: spec}); !ok || err != nil {
			t.Fatalf("expected %q to pass: %v", spec, v.GetErrors())
		}
	}

	if ok, err := v.Passes(cronConfig{Spec: "invalid"}); ok || err == nil {
		t.Fatalf("expected cron validation to fail")
	}
}

type slugConfig struct {
	Slug string `validate:"slug"`
}

func TestSlugValidation(t *testing.T) {
	v := MakeValidatorFrom(validator.New())

	if ok, _ := v.Passes(slugConfig{Slug: "getting-started-with-nextjs-15"}); !ok {
		t.Fatalf("expected slug to pass")
	}

	for _, bad := range []string{"", "Has Spaces", "trailing-", "UPPER"} {
		if ok, _ := v.Passes(slugConfig{Slug: bad}); ok {
			t.Fatalf("expected %q to fail", bad)
		}
	}
}
