package domain

import "errors"

var (
	ErrNotFound      = errors.New("resource not found")
	ErrConflict      = errors.New("resource conflict")
	ErrInvalidInput  = errors.New("invalid input")
	ErrFoodNotFound  = errors.New("food not found in nutrition index")
	ErrEmptyFeedback = errors.New("no feedback signals recognized")
)
