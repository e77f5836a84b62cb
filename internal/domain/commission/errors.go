package commission

import "errors"

var (
	ErrAlreadyCalculated  = errors.New("commission already calculated for this payment")
	ErrCommissionNotFound = errors.New("commission record not found")
	ErrEarningsNotFound   = errors.New("clinic earnings record not found")
)
