package utils

import "errors"

var (
	ErrInvalidDays         = errors.New("days must be a positive integer")
	ErrMissingQuery        = errors.New("query parameter is required")
	ErrInvalidPage         = errors.New("invalid page parameter")
	ErrInvalidPageSize     = errors.New("invalid page size parameter")
	ErrAttractionNotFound  = errors.New("attraction not found")
	ErrLodgingNotFound     = errors.New("lodging not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
	ErrDatabaseError       = errors.New("database error")
)
