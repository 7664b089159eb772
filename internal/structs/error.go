package structs

import "errors"

var (
	ErrBadRequest      = errors.New("bad request")
	ErrNoRowsAffected  = errors.New("no rows affected")
	ErrNotFound        = errors.New("no rows in result set")
	ErrUniqueViolation = errors.New("unique violation error")
	ErrUnauthorized    = errors.New("not authenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrEmptyBag        = errors.New("bag is empty")
	ErrShopInactive    = errors.New("shop is not active")
)
