package domain

import "errors"

var (
	ErrProjectNotConfigured = errors.New("project ID not configured")
	ErrEmptySelector        = errors.New("label selector is empty")
	ErrNoComputeAdapter     = errors.New("compute adapter is not initialized")
)
