package models

import "errors"

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Status  int    `json:"status"`  // HTTP Status Code
	Message string `json:"message"` // รายละเอียดของ Error
}

var (
	// ErrInvalidID is returned for identifiers that are not 24-char hex ObjectIDs.
	ErrInvalidID    = errors.New("invalid identifier")
	ErrNotFound     = errors.New("document not found")
	ErrUnauthorized = errors.New("unauthorized access")
)
