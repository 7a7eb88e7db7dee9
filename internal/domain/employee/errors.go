package employee

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrApproverRoleRequired   = errors.New("manager or admin role required to approve or reject")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
