package handlers

import (
	"net/http"

	"github.com/Dosada05/tournament-draws/brackets"
	"github.com/Dosada05/tournament-draws/services"
)

type DrawHandler struct {
	drawService services.DrawService
}

func NewDrawHandler(ds services.DrawService) *DrawHandler {
	return &DrawHandler{drawService: ds}
}

// CreateDraw godoc
// @Summary Generate a draw
// @Tags draws
// @Description Generates the structures and links of a draw type and stores the document.
// @Accept json
// @Produce json
// @Param input body brackets.GenerateDrawParams true "Draw parameters"
// @Success 201 {object} map[string]interface{} "Generated draw"
// @Failure 400 {object} map[string]interface{} "INVALID_DRAW_TYPE, INVALID_DRAW_SIZE, INVALID_VALUES"
// @Failure 401 {object} map[string]interface{}
// @Security BearerAuth
// @Router /draws [post]
func (h *DrawHandler) CreateDraw(w http.ResponseWriter, r *http.Request) {
	var input brackets.GenerateDrawParams
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	draw, err := h.drawService.GenerateDraw(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusCreated, jsonResponse{"drawDefinition": draw})
}

// ListDraws godoc
// @Summary List draws
// @Tags draws
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /draws [get]
func (h *DrawHandler) ListDraws(w http.ResponseWriter, r *http.Request) {
	draws, err := h.drawService.ListDraws(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, jsonResponse{"draws": draws})
}

// GetDraw godoc
// @Summary Get a draw document
// @Tags draws
// @Produce json
// @Param drawID path string true "Draw ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "DRAW_NOT_FOUND"
// @Router /draws/{drawID} [get]
func (h *DrawHandler) GetDraw(w http.ResponseWriter, r *http.Request) {
	drawID, err := urlParam(r, "drawID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	draw, err := h.drawService.GetDraw(r.Context(), drawID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, jsonResponse{"drawDefinition": draw})
}

// DeleteDraw godoc
// @Summary Delete a draw
// @Tags draws
// @Produce json
// @Param drawID path string true "Draw ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "DRAW_NOT_FOUND"
// @Security BearerAuth
// @Router /draws/{drawID} [delete]
func (h *DrawHandler) DeleteDraw(w http.ResponseWriter, r *http.Request) {
	drawID, err := urlParam(r, "drawID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.drawService.DeleteDraw(r.Context(), drawID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, jsonResponse{"deletedDrawIds": []string{drawID}})
}

// AddQualifyingLink godoc
// @Summary Link a qualifying structure to the main structure
// @Tags draws
// @Accept json
// @Produce json
// @Param drawID path string true "Draw ID"
// @Param input body brackets.QualifyingLinkParams true "Link endpoints"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "MISSING_STRUCTURE_ID, INVALID_LINK"
// @Security BearerAuth
// @Router /draws/{drawID}/links/qualifying [post]
func (h *DrawHandler) AddQualifyingLink(w http.ResponseWriter, r *http.Request) {
	drawID, err := urlParam(r, "drawID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	var input brackets.QualifyingLinkParams
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	link, err := h.drawService.AddQualifyingLink(r.Context(), drawID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusCreated, jsonResponse{"link": link})
}

// AddAdHocMatchUps godoc
// @Summary Append a round of ad hoc matchUps
// @Tags draws
// @Accept json
// @Produce json
// @Param drawID path string true "Draw ID"
// @Param structureID path string true "Structure ID"
// @Param input body brackets.AdHocMatchUpsParams true "Pairings or a matchUp count"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "INVALID_DRAW_TYPE, INVALID_VALUES"
// @Security BearerAuth
// @Router /draws/{drawID}/structures/{structureID}/adhoc-matchups [post]
func (h *DrawHandler) AddAdHocMatchUps(w http.ResponseWriter, r *http.Request) {
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
	var input brackets.AdHocMatchUpsParams
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matchUps, err := h.drawService.AddAdHocMatchUps(r.Context(), drawID, structureID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusCreated, jsonResponse{"matchUps": matchUps})
}

// CreateSnapshot godoc
// @Summary Archive the draw document to object storage
// @Tags draws
// @Produce json
// @Param drawID path string true "Draw ID"
// @Success 201 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{} "Archive not configured"
// @Security BearerAuth
// @Router /draws/{drawID}/snapshots [post]
func (h *DrawHandler) CreateSnapshot(w http.ResponseWriter, r *http.Request) {
	drawID, err := urlParam(r, "drawID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	snapshot, err := h.drawService.ArchiveDraw(r.Context(), drawID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusCreated, jsonResponse{"snapshot": snapshot})
}
