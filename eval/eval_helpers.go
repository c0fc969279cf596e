package eval

import "github.com/neilm5/pyrite/errs"

func zeroDivisionError() *errs.Error {
	return errs.ZeroDivision("Cannot divide by 0")
}
