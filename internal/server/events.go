package server

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
)

// StreamContentEvents pushes coalesced refresh batches over SSE so the
// storefront re-fetches changed tables without polling.
func (s *Server) StreamContentEvents(c *gin.Context) {
	ch, cancel := s.hub.Subscribe()
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.Flush()

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case batch, ok := <-ch:
			if !ok {
				return false
			}
			payload, err := json.Marshal(batch)
			if err != nil {
				return false
			}
			c.SSEvent("refresh", string(payload))
			return true
		}
	})
}
