package model

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by all packages. Wrap with %w and test with errors.Is.
var (
	ErrConfiguration  = errors.New("configuration error")
	ErrConfigNotFound = fmt.Errorf("config file not found: %w", ErrConfiguration)
	ErrDependency     = errors.New("dependency failure")
	ErrInputFormat    = errors.New("input format error")

	// ErrIssuesFound is returned after a clean run that reported issues
	ErrIssuesFound = errors.New("issues found")
)
