package domain

import "errors"

var (
	ErrHomeDirUnavailable = errors.New("failed to get home directory")
	ErrNameProbe          = errors.New("failed to probe folder name")
	ErrNoTerminal         = errors.New("an interactive terminal is required")
)
