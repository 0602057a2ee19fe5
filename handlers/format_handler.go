package handlers

import (
	"net/http"

	"github.com/Dosada05/tournament-draws/services"
)

type FormatHandler struct {
	formatService services.FormatService
}

func NewFormatHandler(fs services.FormatService) *FormatHandler {
	return &FormatHandler{formatService: fs}
}

// ParseFormat godoc
// @Summary Parse a matchUp format code
// @Tags matchup-formats
// @Accept json
// @Produce json
// @Param input body object true "{\"matchUpFormat\": \"SET3-S:6/TB7\"}"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "UNRECOGNIZED_MATCHUP_FORMAT"
// @Router /matchup-formats/parse [post]
func (h *FormatHandler) ParseFormat(w http.ResponseWriter, r *http.Request) {
	var input struct {
		MatchUpFormat string `json:"matchUpFormat"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	f, err := h.formatService.Parse(input.MatchUpFormat)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, jsonResponse{"matchUpFormat": f})
}

// StringifyFormat godoc
// @Summary Render a matchUp format descriptor as a code
// @Tags matchup-formats
// @Accept json
// @Produce json
// @Param input body services.StringifyFormatInput true "Descriptor"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "MISSING_VALUE, INVALID_MATCHUP_FORMAT"
// @Router /matchup-formats/stringify [post]
func (h *FormatHandler) StringifyFormat(w http.ResponseWriter, r *http.Request) {
	var input services.StringifyFormatInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	code, err := h.formatService.Stringify(input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, jsonResponse{"matchUpFormat": code})
}

// ValidateFormat godoc
// @Summary Check that a code round-trips
// @Tags matchup-formats
// @Produce json
// @Param code query string true "MatchUp format code"
// @Success 200 {object} map[string]interface{}
// @Router /matchup-formats/validate [get]
func (h *FormatHandler) ValidateFormat(w http.ResponseWriter, r *http.Request) {
	v := h.formatService.Validate(r.URL.Query().Get("code"))
	successResponse(w, r, http.StatusOK, jsonResponse{
		"code":      v.Code,
		"valid":     v.Valid,
		"canonical": v.Canonical,
	})
}

// ListFormats godoc
// @Summary Canonical matchUp formats
// @Tags matchup-formats
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /matchup-formats [get]
func (h *FormatHandler) ListFormats(w http.ResponseWriter, r *http.Request) {
	successResponse(w, r, http.StatusOK, jsonResponse{"formats": h.formatService.ListFormats()})
}
