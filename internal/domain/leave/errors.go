package leave

import "errors"

var (
	ErrLeaveNotFound    = errors.New("leave application not found")
	ErrAlreadyFinalized = errors.New("leave application already approved or rejected")
)
