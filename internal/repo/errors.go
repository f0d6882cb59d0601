package repo

import "errors"

var (
	ErrInvalidSort           = errors.New("sort must be <breed|name|age>:<asc|desc>")
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")
)
