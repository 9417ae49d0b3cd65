package payment

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status is the state of a single payment attempt.
type Status int

const (
	UnknownStatus Status = iota
	Initiated
	Success
	Failed
	Refunded
)

var statusNames = map[Status]string{
	Initiated: "initiated",
	Success:   "success",
	Failed:    "failed",
	Refunded:  "refunded",
}

func ParseStatus(s string) (Status, error) {
	for st, name := range statusNames {
		if name == s {
			return st, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid payment attempt status", s))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid payment attempt status", s))
	}
	return nil
}
