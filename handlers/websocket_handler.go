package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/tournament-draws/notify"
	"github.com/Dosada05/tournament-draws/services"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origins are restricted by the CORS layer for browsers.
		return true
	},
}

type WebSocketHandler struct {
	hub         *notify.Hub
	drawService services.DrawService
}

func NewWebSocketHandler(hub *notify.Hub, ds services.DrawService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:         hub,
		drawService: ds,
	}
}

// ServeWs streams the notifications of one draw.
// @Summary Live notifications of a draw
// @Tags draws
// @Param drawID path string true "Draw ID"
// @Success 101 "Switching protocols"
// @Failure 404 {object} map[string]interface{} "DRAW_NOT_FOUND"
// @Router /ws/draws/{drawID} [get]
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	drawID, err := urlParam(r, "drawID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if _, err := h.drawService.GetDraw(r.Context(), drawID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		h.hub.Logger().Warn("failed to upgrade websocket connection", slog.String("drawId", drawID), slog.Any("error", err))
		return
	}

	client := h.hub.NewClient(conn, notify.RoomForDraw(drawID))
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
