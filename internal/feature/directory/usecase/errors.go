// Package usecase implements the content directory queries and submissions.
package usecase

import "errors"

var (
	// ErrInvalidPaper is returned when a paper has no title or neither a link nor a file.
	ErrInvalidPaper = errors.New("paper needs a title and a link or PDF")

	// ErrInvalidMockInterview is returned when a resource lacks a title or link.
	ErrInvalidMockInterview = errors.New("mock interview needs a title and a link")

	// ErrInvalidFilter is returned for an unknown budget bucket or an out-of-range rating.
	ErrInvalidFilter = errors.New("invalid filter")
)
