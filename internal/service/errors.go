package service

import "errors"

var (
	ErrValidation     = errors.New("validation")
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("duplicate email")
	ErrWrongEmail     = errors.New("wrong email")
	ErrWrongPassword  = errors.New("wrong password")
)
