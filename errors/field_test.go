package errors

import "testing"

func TestFieldNilError(t *testing.T) {
	if err := Field("Name", nil, "whatever"); err != nil {
		t.Fatalf("a nil error must stay nil, got %+v", err)
	}
}

func TestFieldErrors(t *testing.T) {
	var errs error
	errs = AppendField(errs, "Name", ErrEmpty)
	errs = AppendField(errs, "Age", ErrAmount)
	errs = AppendField(errs, "Age", ErrState)

	if got := FieldErrors(errs, "Name"); len(got) != 1 {
		t.Fatalf("want one Name error, got %d", len(got))
	} else if !ErrEmpty.Is(got[0]) {
		t.Fatalf("unexpected Name error: %+v", got[0])
	}

	if got := FieldErrors(errs, "Age"); len(got) != 2 {
		t.Fatalf("want two Age errors, got %d", len(got))
	}

	if got := FieldErrors(errs, "Missing"); got != nil {
		t.Fatalf("want no Missing errors, got %+v", got)
	}

	if got := FieldErrors(nil, "Name"); got != nil {
		t.Fatalf("want no errors for nil, got %+v", got)
	}
}

func TestAppendFieldIgnoresNil(t *testing.T) {
	var errs error
	errs = AppendField(errs, "Name", nil)
	if errs != nil {
		t.Fatalf("want nil, got %+v", errs)
	}

	errs = AppendField(errs, "Age", ErrAmount)
	errs = AppendField(errs, "Name", nil)
	if got := FieldErrors(errs, "Age"); len(got) != 1 {
		t.Fatalf("want one Age error, got %d", len(got))
	}
}

func TestFieldErrorIsMatchable(t *testing.T) {
	err := Field("Name", ErrEmpty, "must be set")
	if !ErrEmpty.Is(err) {
		t.Fatalf("a field error must match its cause, got %+v", err)
	}
}
