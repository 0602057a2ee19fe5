package services_test

import (
	"errors"
	"testing"

	"github.com/Dosada05/tournament-draws/matchupformat"
	"github.com/Dosada05/tournament-draws/models"
	"github.com/Dosada05/tournament-draws/services"
)

func TestFormatService(t *testing.T) {
	formats := services.NewFormatService()

	f, err := formats.Parse(" SET3-S:6/TB7-F:TB10 ")
	if err != nil {
		t.Fatal(err)
	}
	code, err := formats.Stringify(services.StringifyFormatInput{MatchUpFormat: f})
	if err != nil || code != "SET3-S:6/TB7-F:TB10" {
		t.Errorf("stringify = %q, %v", code, err)
	}

	if _, err := formats.Parse(""); !errors.Is(err, models.ErrMissingValue) {
		t.Errorf("empty parse err = %v", err)
	}
	if _, err := formats.Parse("SET3-X"); !errors.Is(err, models.ErrUnrecognizedFormat) {
		t.Errorf("bad parse err = %v", err)
	}
	if _, err := formats.Stringify(services.StringifyFormatInput{}); !errors.Is(err, models.ErrMissingValue) {
		t.Errorf("nil stringify err = %v", err)
	}
	if _, err := formats.Stringify(services.StringifyFormatInput{MatchUpFormat: &models.MatchUpFormat{}}); !errors.Is(err, models.ErrInvalidMatchUpFormat) {
		t.Errorf("empty stringify err = %v", err)
	}
}

func TestFormatServiceValidate(t *testing.T) {
	formats := services.NewFormatService()
	tests := []struct {
		code      string
		valid     bool
		canonical string
	}{
		{"SET3-S:6/TB7", true, "SET3-S:6/TB7"},
		{"SET3-S:6/TB7@6", true, "SET3-S:6/TB7"},
		{"SET3-S:6/TB7-F:6/TB7", false, "SET3-S:6/TB7"},
		{"garbage", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got := formats.Validate(tt.code)
			if got.Valid != tt.valid || got.Canonical != tt.canonical {
				t.Errorf("Validate(%q) = %+v", tt.code, got)
			}
		})
	}
	if got := formats.ListFormats(); len(got) != len(matchupformat.Formats) {
		t.Errorf("formats = %d, want %d", len(got), len(matchupformat.Formats))
	}
}
