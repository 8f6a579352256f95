package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-gif/rules"
)

var (
	// ErrInvalidDimension is returned when a grid has a non-positive number of rows or columns
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrInvalidProbability is returned when a seeding probability is outside [0, 1]
	ErrInvalidProbability = errors.New("invalid probability")
	// ErrPatternDoesNotFit is returned by strict seeders when a pattern cannot be centered on the grid
	ErrPatternDoesNotFit = errors.New("pattern does not fit")
	// ErrUnknownPattern is returned when a named pattern is not registered
	ErrUnknownPattern = errors.New("unknown pattern")
	// ErrUnknownCounter is returned when a neighbor counting strategy is not registered
	ErrUnknownCounter = errors.New("unknown neighbor counter")

	// ErrInvalidRule is rules.ErrInvalidRule, re-exported so callers can match every construction error from one package
	ErrInvalidRule = rules.ErrInvalidRule
)
