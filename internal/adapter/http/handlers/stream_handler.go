package handlers

import (
	"errors"
	"net/http"

	"clicknova_admin/internal/adapter/stream"
	"clicknova_admin/pkg"

	"github.com/gin-gonic/gin"
)

// StreamHandler exposes the live list views over Server-Sent Events. Each
// event carries the full collection snapshot, so a client can render any
// event without replaying history.
type StreamHandler struct {
	hub *stream.Hub
}

func NewStreamHandler(hub *stream.Hub) *StreamHandler {
	return &StreamHandler{hub: hub}
}

func (h *StreamHandler) ListCollections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.hub.Collections()})
}

// Subscribe godoc
// @Summary Subscribe to a collection stream
// @Description Server-Sent Events stream of full collection snapshots. EventSource cannot set headers, so the bearer token may also be passed as the access_token query parameter.
// @Tags streams
// @Produce text/event-stream
// @Param collection path string true "Collection name"
// @Success 200 {string} string "event stream"
// @Failure 404 {object} pkg.AppError
// @Router /v1/streams/{collection} [get]
func (h *StreamHandler) Subscribe(c *gin.Context) {
	name := c.Param("collection")

	events, cancel, err := h.hub.Subscribe(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, stream.ErrUnknownCollection) {
			respondError(c, pkg.NewDomainErrorSimple("NOT_FOUND", "Unknown stream collection", http.StatusNotFound))
			return
		}
		respondError(c, pkg.NewDomainError("INTERNAL_ERROR", "Could not open stream", err, http.StatusInternalServerError))
		return
	}
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Writer.Flush()

	clientGone := c.Request.Context().Done()
	for {
		select {
		case <-clientGone:
			return
		case snapshot, ok := <-events:
			if !ok {
				return
			}
			c.SSEvent(name, string(snapshot))
			c.Writer.Flush()
		}
	}
}
