package handlers

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/iyforlando/academy-api/internal/middleware"
	"github.com/iyforlando/academy-api/internal/sse"
	"github.com/m1z23r/drift/pkg/drift"
)

type SSEHandler struct {
	hub *sse.Hub
}

func NewSSEHandler(hub *sse.Hub) *SSEHandler {
	return &SSEHandler{hub: hub}
}

// Connect opens the event stream scoped to one academy. Admins can watch
// any academy; teachers only academies in their scope.
func (h *SSEHandler) Connect(c *drift.Context) {
	access := middleware.GetAccess(c)
	if access == nil {
		c.Unauthorized("not authenticated")
		return
	}

	academyID, err := uuid.Parse(c.Param("academyId"))
	if err != nil {
		c.BadRequest("invalid academy id")
		return
	}

	if !access.IsAdmin() && !access.Teacher.CanAccess(academyID) {
		c.Forbidden("not assigned to this academy")
		return
	}

	sseCtx := c.SSE()

	clientID := uuid.New().String()
	client := &sse.Client{
		ID:        clientID,
		ProfileID: access.ProfileID,
		Academies: map[uuid.UUID]bool{academyID: true},
		Send:      make(chan []byte, 256),
	}

	h.hub.Register(client)
	defer h.hub.Unregister(client)

	if err := sseCtx.SendJSON(map[string]string{
		"type":      "connected",
		"client_id": clientID,
	}, "system", ""); err != nil {
		return
	}

	done := make(chan struct{})
	go func() {
		<-c.Request.Context().Done()
		close(done)
	}()

	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				return
			}
			if err := sseCtx.Send(string(msg), "message", ""); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func (h *SSEHandler) Subscribe(c *drift.Context) {
	access := middleware.GetAccess(c)
	if access == nil {
		c.Unauthorized("not authenticated")
		return
	}

	clientID := c.Param("clientId")
	if clientID == "" {
		c.BadRequest("client_id is required")
		return
	}

	academyID, err := uuid.Parse(c.Param("academyId"))
	if err != nil {
		c.BadRequest("invalid academy id")
		return
	}

	if !access.IsAdmin() && !access.Teacher.CanAccess(academyID) {
		c.Forbidden("not assigned to this academy")
		return
	}

	h.hub.SubscribeToAcademy(clientID, academyID)

	_ = c.JSON(200, map[string]string{
		"message": fmt.Sprintf("subscribed to academy %s", academyID),
	})
}

func (h *SSEHandler) Unsubscribe(c *drift.Context) {
	access := middleware.GetAccess(c)
	if access == nil {
		c.Unauthorized("not authenticated")
		return
	}

	clientID := c.Param("clientId")
	if clientID == "" {
		c.BadRequest("client_id is required")
		return
	}

	academyID, err := uuid.Parse(c.Param("academyId"))
	if err != nil {
		c.BadRequest("invalid academy id")
		return
	}

	h.hub.UnsubscribeFromAcademy(clientID, academyID)

	_ = c.JSON(200, map[string]string{
		"message": fmt.Sprintf("unsubscribed from academy %s", academyID),
	})
}
