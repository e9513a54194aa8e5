package helpers

import (
	"github.com/ztrue/tracerr"
)

// Error carries one or more stack-traced errors. The zero value means "no
// error"; check it with IsNil rather than comparing against nil.
type Error struct {
	errs []tracerr.Error
}

var NilError = Error{nil}

func (e *Error) IsNil() bool {
	return IsNil(e)
}

func IsNil(err error) bool {
	if traceableErr, ok := err.(Error); ok {
		return traceableErr.First() == nil
	}
	if traceableErr, ok := err.(*Error); ok {
		return traceableErr == nil || traceableErr.First() == nil
	}
	return err == nil
}

// AsError converts to a plain error, mapping NilError to nil so the result can
// be returned through interfaces that compare against nil.
func (e Error) AsError() error {
	if IsNil(e) {
		return nil
	}
	return e
}

func (e Error) Error() string {
	result := ""
	for i, err := range e.errs {
		if i > 0 {
			result += "\n"
		}
		result += err.Error()
	}
	return result
}

func (e Error) String() string {
	result := ""
	for _, err := range e.errs {
		result += "-------------------------------------------------------------------------------\n"
		result += Indent(tracerr.Sprint(err), ".  ") + "\n"
	}
	return result
}

// Unwrap lets errors.Is and errors.As see through to the wrapped sentinels.
func (e Error) Unwrap() []error {
	result := make([]error, 0, len(e.errs))
	for _, err := range e.errs {
		if err != nil {
			result = append(result, err)
		}
	}
	return result
}

func (e Error) First() tracerr.Error {
	if e.errs == nil {
		return nil
	} else {
		return e.errs[0]
	}
}

func Wrap(err error) Error {
	if err == nil {
		return NilError
	}
	if traceableErr, ok := err.(Error); ok {
		return traceableErr
	}
	return Error{[]tracerr.Error{tracerr.Wrap(err)}}
}

func WrapReturn[T any](x T, err error) (T, Error) {
	return x, Wrap(err)
}

func Join(others ...Error) Error {
	others = FilterSlice(others, func(err Error) bool {
		return !IsNil(err)
	})
	if len(others) == 0 {
		return NilError
	} else if len(others) == 1 {
		return others[0]
	}

	result := Error{}
	for _, o := range others {
		result.errs = append(result.errs, o.errs...)
	}
	return result
}

func (err Error) NumErrors() int {
	if IsNil(err) {
		return 0
	}

	num := 0
	for _, e := range err.errs {
		if e != nil {
			num++
		}
	}
	return num
}

func Errorf(format string, args ...interface{}) Error {
	return Error{[]tracerr.Error{tracerr.Errorf(format, args...)}}
}
