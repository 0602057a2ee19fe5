package services

import (
	"fmt"
	"strings"

	"github.com/Dosada05/tournament-draws/matchupformat"
	"github.com/Dosada05/tournament-draws/models"
)

type FormatService interface {
	Parse(code string) (*models.MatchUpFormat, error)
	Stringify(input StringifyFormatInput) (string, error)
	Validate(code string) *FormatValidation
	ListFormats() []matchupformat.Format
}

type StringifyFormatInput struct {
	MatchUpFormat     *models.MatchUpFormat `json:"matchUpFormat"`
	PreserveRedundant bool                  `json:"preserveRedundant,omitempty"`
}

type FormatValidation struct {
	Code      string `json:"code"`
	Valid     bool   `json:"valid"`
	Canonical string `json:"canonical,omitempty"`
}

type formatService struct{}

func NewFormatService() FormatService {
	return &formatService{}
}

func (s *formatService) Parse(code string) (*models.MatchUpFormat, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: matchUpFormat", models.ErrMissingValue)
	}
	return matchupformat.Parse(code)
}

func (s *formatService) Stringify(input StringifyFormatInput) (string, error) {
	if input.MatchUpFormat == nil {
		return "", fmt.Errorf("%w: matchUpFormat", models.ErrMissingValue)
	}
	code := matchupformat.Stringify(input.MatchUpFormat, input.PreserveRedundant)
	if code == "" {
		return "", models.ErrInvalidMatchUpFormat
	}
	return code, nil
}

// Validate never fails; an unparseable code is simply reported invalid.
func (s *formatService) Validate(code string) *FormatValidation {
	v := &FormatValidation{Code: code, Valid: matchupformat.IsValid(code)}
	if canonical, err := matchupformat.Normalize(code); err == nil {
		v.Canonical = canonical
	}
	return v
}

func (s *formatService) ListFormats() []matchupformat.Format {
	return append([]matchupformat.Format(nil), matchupformat.Formats...)
}
