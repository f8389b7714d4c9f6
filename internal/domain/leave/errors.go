package leave

import "errors"

var (
	ErrInvalidRange         = errors.New("end date is before start date")
	ErrUnknownLeaveType     = errors.New("unknown leave type")
	ErrInsufficientBalance  = errors.New("insufficient leave balance")
	ErrLeaveNotFound        = errors.New("leave request not found")
	ErrLeaveAlreadyResolved = errors.New("leave request already approved or rejected")
)
