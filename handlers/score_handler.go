package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Dosada05/tournament-draws/models"
	"github.com/Dosada05/tournament-draws/scoring"
	"github.com/Dosada05/tournament-draws/services"
)

type ScoreHandler struct {
	scoreService services.ScoreService
}

func NewScoreHandler(ss services.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreService: ss}
}

type setValueRequest struct {
	Field scoring.SetField `json:"field"`
	Value *int             `json:"value"`
}

func drawAndMatchUp(r *http.Request) (string, string, error) {
	drawID, err := urlParam(r, "drawID")
	if err != nil {
		return "", "", err
	}
	matchUpID, err := urlParam(r, "matchUpID")
	if err != nil {
		return "", "", err
	}
	return drawID, matchUpID, nil
}

func matchUpPayload(res *services.MatchUpResult) jsonResponse {
	payload := jsonResponse{
		"matchUp":          res.MatchUp,
		"modifiedMatchUps": res.Modified,
	}
	if res.Analysis != nil {
		payload["analysis"] = res.Analysis
	}
	return payload
}

// SetMatchUpScore godoc
// @Summary Replace the score of a matchUp
// @Tags scores
// @Accept json
// @Produce json
// @Param drawID path string true "Draw ID"
// @Param matchUpID path string true "MatchUp ID"
// @Param input body services.SetScoreInput true "Sets and optional outcome"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "INVALID_VALUES, INVALID_SIDE_NUMBER"
// @Failure 409 {object} map[string]interface{} "CANNOT_CHANGE_WINNING_SIDE"
// @Security BearerAuth
// @Router /draws/{drawID}/matchups/{matchUpID}/score [put]
func (h *ScoreHandler) SetMatchUpScore(w http.ResponseWriter, r *http.Request) {
	drawID, matchUpID, err := drawAndMatchUp(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	var input services.SetScoreInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	res, err := h.scoreService.SetMatchUpScore(r.Context(), drawID, matchUpID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, matchUpPayload(res))
}

// SetSetValue godoc
// @Summary Change one field of one set
// @Tags scores
// @Description Tiebreak scores left over from a games change are cleared when that makes the set valid.
// @Accept json
// @Produce json
// @Param drawID path string true "Draw ID"
// @Param matchUpID path string true "MatchUp ID"
// @Param setNumber path int true "Set number"
// @Param input body setValueRequest true "Field and value; null clears"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "INVALID_SET_NUMBER, INVALID_VALUES"
// @Security BearerAuth
// @Router /draws/{drawID}/matchups/{matchUpID}/sets/{setNumber} [patch]
func (h *ScoreHandler) SetSetValue(w http.ResponseWriter, r *http.Request) {
	drawID, matchUpID, err := drawAndMatchUp(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	raw, err := urlParam(r, "setNumber")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	setNumber, err := strconv.Atoi(raw)
	if err != nil {
		mapServiceErrorToHTTP(w, r, fmt.Errorf("%w: %q", models.ErrInvalidSetNumber, raw))
		return
	}
	var input setValueRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	res, err := h.scoreService.SetSetValue(r.Context(), drawID, matchUpID, services.SetValueInput{
		SetNumber: setNumber,
		Field:     input.Field,
		Value:     input.Value,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	payload := matchUpPayload(res.MatchUpResult)
	payload["submission"] = res.Submission
	successResponse(w, r, http.StatusOK, payload)
}

// GetScoreString godoc
// @Summary Render the score string of a matchUp
// @Tags scores
// @Produce json
// @Param drawID path string true "Draw ID"
// @Param matchUpID path string true "MatchUp ID"
// @Param reversed query bool false "Swap the sides"
// @Param winnerFirst query bool false "Winner's games first"
// @Success 200 {object} map[string]interface{}
// @Router /draws/{drawID}/matchups/{matchUpID}/score-string [get]
func (h *ScoreHandler) GetScoreString(w http.ResponseWriter, r *http.Request) {
	drawID, matchUpID, err := drawAndMatchUp(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	reversed, err := queryBool(r, "reversed")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	winnerFirst, err := queryBool(r, "winnerFirst")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	res, err := h.scoreService.GetScoreString(r.Context(), drawID, matchUpID, services.ScoreStringOptions{
		Reversed:    reversed,
		WinnerFirst: winnerFirst,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, jsonResponse{
		"matchUpId":   res.MatchUpID,
		"scoreString": res.ScoreString,
		"reversed":    res.Reversed,
		"winnerFirst": res.WinnerFirst,
	})
}

// GetScoreHistory godoc
// @Summary Previous scores of a matchUp
// @Tags scores
// @Produce json
// @Param drawID path string true "Draw ID"
// @Param matchUpID path string true "MatchUp ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "NOT_FOUND"
// @Router /draws/{drawID}/matchups/{matchUpID}/score-history [get]
func (h *ScoreHandler) GetScoreHistory(w http.ResponseWriter, r *http.Request) {
	drawID, matchUpID, err := drawAndMatchUp(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	history, err := h.scoreService.GetScoreHistory(r.Context(), drawID, matchUpID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, jsonResponse{"scoreHistory": history})
}

// UndoScore godoc
// @Summary Restore the previous score of a matchUp
// @Tags scores
// @Produce json
// @Param drawID path string true "Draw ID"
// @Param matchUpID path string true "MatchUp ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "NOT_FOUND"
// @Security BearerAuth
// @Router /draws/{drawID}/matchups/{matchUpID}/score-history [delete]
func (h *ScoreHandler) UndoScore(w http.ResponseWriter, r *http.Request) {
	drawID, matchUpID, err := drawAndMatchUp(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	res, err := h.scoreService.UndoScore(r.Context(), drawID, matchUpID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, matchUpPayload(res))
}

// GetStructureTally godoc
// @Summary Round robin standings
// @Tags scores
// @Produce json
// @Param drawID path string true "Draw ID"
// @Param structureID path string true "Container, group or structure ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "STRUCTURE_NOT_FOUND"
// @Router /draws/{drawID}/structures/{structureID}/tally [get]
func (h *ScoreHandler) GetStructureTally(w http.ResponseWriter, r *http.Request) {
	drawID, err := urlParam(r, "drawID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	structureID, err := urlParam(r, "structureID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tally, err := h.scoreService.GetStructureTally(r.Context(), drawID, structureID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, jsonResponse{"tally": tally})
}
