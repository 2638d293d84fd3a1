package datemath

import "errors"

var (
	ErrInvalidText = errors.New("datemath: text is not valid UTF-8")
	ErrInvalidDate = errors.New("datemath: invalid date")
)
