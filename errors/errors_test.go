package errors

import (
	"fmt"
	"testing"
)

func TestRegisterRejectsDuplicateCodes(t *testing.T) {
	if got := recoverPanic(func() { Register(921928, "custom") }); got != nil {
		t.Fatalf("first registration must not panic: %v", got)
	}
	if got := recoverPanic(func() { Register(921928, "clone") }); got == nil {
		t.Fatal("duplicate code registration must panic")
	}
}

func recoverPanic(fn func()) (msg interface{}) {
	defer func() { msg = recover() }()
	fn()
	return nil
}

func TestIsMatching(t *testing.T) {
	cases := map[string]struct {
		kind *Error
		err  error
		want bool
	}{
		"nil kind matches nil error": {
			kind: nil,
			err:  nil,
			want: true,
		},
		"nil kind does not match an error": {
			kind: nil,
			err:  ErrNotFound,
			want: false,
		},
		"kind matches itself": {
			kind: ErrNotFound,
			err:  ErrNotFound,
			want: true,
		},
		"kind matches a wrapped instance": {
			kind: ErrNotFound,
			err:  Wrap(ErrNotFound, "gone"),
			want: true,
		},
		"kind matches a deeply wrapped instance": {
			kind: ErrNotFound,
			err:  Wrap(Wrap(ErrNotFound, "gone"), "sorry"),
			want: true,
		},
		"different kinds do not match": {
			kind: ErrNotFound,
			err:  Wrap(ErrState, "broken"),
			want: false,
		},
		"stdlib errors are not matched": {
			kind: ErrNotFound,
			err:  fmt.Errorf("not found"),
			want: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.want {
				t.Fatalf("want %v", tc.want)
			}
		})
	}
}

func TestWrapPreservesCode(t *testing.T) {
	err := Wrap(ErrAmount, "too much")
	if got, want := Code(err), ErrAmount.Code(); got != want {
		t.Fatalf("want code %d, got %d", want, got)
	}

	// a stdlib error is labeled as internal
	err = Wrap(fmt.Errorf("stdlib"), "wrapped")
	if got := Code(err); got != 1 {
		t.Fatalf("want internal code 1, got %d", got)
	}

	if got := Code(nil); got != 0 {
		t.Fatalf("want code 0 for nil, got %d", got)
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "no problem"); err != nil {
		t.Fatalf("wrapping nil must return nil, got %+v", err)
	}
}

func TestRecover(t *testing.T) {
	fail := func() (err error) {
		defer Recover(&err)
		panic("blew up")
	}
	err := fail()
	if !ErrPanic.Is(err) {
		t.Fatalf("want a panic error, got %+v", err)
	}
}

func TestAppend(t *testing.T) {
	if err := Append(nil, nil); err != nil {
		t.Fatalf("appending nothing must be nil, got %+v", err)
	}

	single := Wrap(ErrState, "one")
	if err := Append(nil, single); err != single {
		t.Fatalf("a single error must not be grouped, got %+v", err)
	}

	group := Append(Wrap(ErrState, "one"), Wrap(ErrAmount, "two"))
	if group == nil {
		t.Fatal("grouped errors must not be nil")
	}
	// a group reports the code of its first member
	if !ErrState.Is(group) {
		t.Fatalf("the first member must define the cause, got %+v", group)
	}
}
