package errors

import (
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If given errors contain a multi error instance, it is flattened so that
// the final result is a single level multi error.
func Append(errs ...error) error {
	var res multiError
	for _, e := range errs {
		switch e := e.(type) {
		case nil:
			continue
		case multiError:
			res = append(res, e...)
		default:
			if isNilErr(e) {
				continue
			}
			res = append(res, e)
		}
	}
	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

// multiError represents a group of errors. It is created by the Append
// function and is never empty.
type multiError []error

func (errs multiError) Error() string {
	switch len(errs) {
	case 0:
		return "<nil>"
	case 1:
		return errs[0].Error()
	}
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Code returns the code of the first contained error. This is consistent
// with the fail-fast processing of messages.
func (errs multiError) Code() uint32 {
	return Code(errs[0])
}

// Cause returns the first error of the group. A multi error is never empty.
func (errs multiError) Cause() error {
	return errs[0]
}
