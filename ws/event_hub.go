package ws

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"scoup/pkg/resp"
	"scoup/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EventLister loads a cafe's existing events; it also rejects unknown cafes.
type EventLister interface {
	List(ctx context.Context, cafeID uint) ([]services.EventResponse, error)
}

// EventHub pushes newly created cafe events to WebSocket subscribers.
type EventHub struct {
	// cafeID -> client -> highest event id already sent to it
	clients    map[uint]map[*websocket.Conn]uint
	broadcast  chan broadcastEvent
	unregister chan subscription
	done       chan struct{}
	closed     bool
	mu         sync.Mutex
	events     EventLister
}

type subscription struct {
	Conn   *websocket.Conn
	CafeID uint
}

type broadcastEvent struct {
	CafeID uint
	Event  services.EventResponse
}

func NewEventHub(events EventLister) *EventHub {
	return &EventHub{
		clients:    make(map[uint]map[*websocket.Conn]uint),
		broadcast:  make(chan broadcastEvent, 64),
		unregister: make(chan subscription),
		done:       make(chan struct{}),
		events:     events,
	}
}

// Run serves unregister/broadcast until ctx is done.
func (h *EventHub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			close(h.done)
			return

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.CafeID][sub.Conn]; ok {
				delete(h.clients[sub.CafeID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn, lastSent := range h.clients[msg.CafeID] {
				if msg.Event.EventID <= lastSent {
					continue // already part of its replay
				}
				if err := conn.WriteJSON(msg.Event); err != nil {
					log.Warn().Err(err).Uint("cafe_id", msg.CafeID).Msg("ws write error")
					conn.Close()
					delete(h.clients[msg.CafeID], conn)
					continue
				}
				h.clients[msg.CafeID][conn] = msg.Event.EventID
			}
			h.mu.Unlock()
		}
	}
}

// Publish queues ev for the cafe's subscribers. It never blocks the caller;
// when the queue is full the event is only available through the list route.
func (h *EventHub) Publish(cafeID uint, ev services.EventResponse) {
	select {
	case h.broadcast <- broadcastEvent{CafeID: cafeID, Event: ev}:
	default:
		log.Warn().Uint("cafe_id", cafeID).Uint("event_id", ev.EventID).Msg("event broadcast queue full")
	}
}

// Subscribers reports how many connections follow the cafe.
func (h *EventHub) Subscribers(cafeID uint) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[cafeID])
}

func (h *EventHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for cafeID, conns := range h.clients {
		for conn := range conns {
			conn.Close()
		}
		delete(h.clients, cafeID)
	}
}

// subscribe registers conn and replays the cafe's events while holding the
// hub lock. Broadcasts wait for the lock, so an event created meanwhile is
// either in the replay or delivered right after it, never both.
func (h *EventHub) subscribe(ctx context.Context, conn *websocket.Conn, cafeID uint) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return errors.New("event hub stopped")
	}

	existing, err := h.events.List(ctx, cafeID)
	if err != nil {
		return err
	}

	var lastSent uint
	for _, ev := range existing {
		if err := conn.WriteJSON(ev); err != nil {
			return err
		}
		if ev.EventID > lastSent {
			lastSent = ev.EventID
		}
	}

	if h.clients[cafeID] == nil {
		h.clients[cafeID] = make(map[*websocket.Conn]uint)
	}
	h.clients[cafeID][conn] = lastSent
	return nil
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket serves GET /ws/shop/:shopId/event. The current events are
// sent first, then every new one as it is created.
func (h *EventHub) HandleWebSocket(c *gin.Context) {
	logger := zerolog.Ctx(c.Request.Context())

	cafeID, err := strconv.ParseUint(c.Param("shopId"), 10, 64)
	if err != nil || cafeID == 0 {
		resp.BadRequest(c, "invalid shopId")
		return
	}

	// reject unknown cafes before the upgrade so they get a plain 404
	if _, err := h.events.List(c.Request.Context(), uint(cafeID)); err != nil {
		resp.Fail(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn().Err(err).Msg("ws upgrade error")
		return
	}

	if err := h.subscribe(c.Request.Context(), conn, uint(cafeID)); err != nil {
		logger.Warn().Err(err).Uint64("cafe_id", cafeID).Msg("ws subscribe error")
		conn.Close()
		return
	}
	go h.listen(subscription{Conn: conn, CafeID: uint(cafeID)})
}

// listen drains client frames so close messages are seen; subscribers are read-only.
func (h *EventHub) listen(sub subscription) {
	defer func() {
		select {
		case h.unregister <- sub:
		case <-h.done:
		}
	}()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) {
				log.Debug().Err(err).Msg("ws read error")
			}
			return
		}
	}
}
