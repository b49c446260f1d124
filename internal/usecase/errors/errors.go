package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrInternalError = errors.New("internal server error")
)

// Project errors
var (
	ErrProjectNotFound = errors.New("project not found")
	ErrMalformedConfig = errors.New("malformed project config")
	ErrNoMediaAttached = errors.New("project has no media attached")
)

// Playback errors
var (
	ErrSessionNotFound      = errors.New("preview session not found")
	ErrInvalidPlaybackRate  = errors.New("playback rate not in the allowed set")
	ErrInvalidTransportWord = errors.New("unknown transport action")
)

// Render pipeline errors
var (
	ErrStageFailed   = errors.New("media staging failed")
	ErrProcessFailed = errors.New("render processing failed")
)
