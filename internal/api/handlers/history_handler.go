package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linweiyu/bugtrack-go/internal/application"
	"github.com/linweiyu/bugtrack-go/pkg/response"
	"github.com/linweiyu/bugtrack-go/pkg/utils"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// How often the activity stream polls for new history entries.
	activityPollPeriod = 2 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type HistoryHandler struct {
	svc *application.HistoryService
}

func NewHistoryHandler(svc *application.HistoryService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

// ListHistory returns a bug's audit trail, newest first unless
// order=asc is requested.
func (h *HistoryHandler) ListHistory(c *gin.Context) {
	bugID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid bug id"})
		return
	}

	ascending := c.Query("order") == "asc"
	entries, err := h.svc.ListForBug(bugID, ascending)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, entries)
}

func (h *HistoryHandler) RecentActivity(c *gin.Context) {
	limit := utils.ParseQueryIntDefault(c, "limit", 50)
	entries, err := h.svc.Recent(limit)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, entries)
}

// StreamActivity pushes history entries over a WebSocket as they
// appear. The stream polls the store; entry IDs are monotonic so the
// high-water mark suffices to dedupe.
func (h *HistoryHandler) StreamActivity(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}
	defer conn.Close()

	var lastID uint
	ticker := time.NewTicker(activityPollPeriod)
	defer ticker.Stop()

	// Discard client messages and notice disconnects.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		entries, err := h.svc.Recent(50)
		if err != nil {
			return
		}
		// Recent returns newest first; replay the unseen tail in order.
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			if e.ID <= lastID {
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(e); err != nil {
				return
			}
			lastID = e.ID
		}

		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case <-ticker.C:
		}
	}
}
