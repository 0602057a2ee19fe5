package services

import (
	"errors"

	"github.com/Dosada05/tournament-draws/models"
)

// Errors raised by the service layer on top of the coded core errors.
var (
	ErrNotFound = models.ErrNotFound

	ErrArchiveDisabled        = errors.New("snapshot archive is not configured")
	ErrAuthDisabled           = errors.New("operator login is not configured")
	ErrAuthInvalidCredentials = errors.New("invalid username or password")
	ErrScoreNotAccepted       = errors.New("matchUp cannot be scored")
)
