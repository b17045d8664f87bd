package sse

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type RegistrationEvent struct {
	RegistrationID uuid.UUID `json:"registration_id"`
	AcademyID      uuid.UUID `json:"academy_id"`
	Status         string    `json:"status"`
}

type AttendanceEvent struct {
	SessionID uuid.UUID `json:"session_id"`
	AcademyID uuid.UUID `json:"academy_id"`
}

type Client struct {
	ID        string
	ProfileID uuid.UUID
	Academies map[uuid.UUID]bool
	Send      chan []byte
}

type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan *AcademyMessage
	mu         sync.RWMutex
}

type AcademyMessage struct {
	AcademyID uuid.UUID
	Event     Event
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *AcademyMessage, 256),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Event)
			for _, client := range h.clients {
				if client.Academies[msg.AcademyID] {
					select {
					case client.Send <- data:
					default:
						// Client buffer full, skip
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) SubscribeToAcademy(clientID string, academyID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		client.Academies[academyID] = true
	}
}

func (h *Hub) UnsubscribeFromAcademy(clientID string, academyID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		delete(client.Academies, academyID)
	}
}

func (h *Hub) BroadcastRegistration(academyID, registrationID uuid.UUID, status string) {
	h.broadcast <- &AcademyMessage{
		AcademyID: academyID,
		Event: Event{
			Type: "registration",
			Data: RegistrationEvent{
				RegistrationID: registrationID,
				AcademyID:      academyID,
				Status:         status,
			},
		},
	}
}

func (h *Hub) BroadcastAttendance(academyID, sessionID uuid.UUID) {
	h.broadcast <- &AcademyMessage{
		AcademyID: academyID,
		Event: Event{
			Type: "attendance",
			Data: AttendanceEvent{
				SessionID: sessionID,
				AcademyID: academyID,
			},
		},
	}
}
