package staff

import "errors"

var (
	ErrStaffNotFound           = errors.New("staff member not found")
	ErrStaffAlreadyDeactivated = errors.New("staff member already deactivated")
)
