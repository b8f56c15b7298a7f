package ws

import (
	"net/http"
	"sync"

	"github.com/AbuBakkarSiddique007/bhojonbox-server/pkg/cartbus"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// CartHub bridges the in-process cart bus to WebSocket push, so every open
// tab of a user learns that the cart changed, not just the one that caused
// it. Frames carry no cart data; clients re-read over REST, same as bus
// subscribers.
type CartHub struct {
	clients    map[uint]map[*websocket.Conn]bool // userID -> connections
	register   chan subscription
	unregister chan subscription
	notify     chan uint
	mu         sync.Mutex
	bus        *cartbus.Bus
	busSubs    map[uint]*cartbus.Subscription
	log        *logrus.Logger
}

type subscription struct {
	conn   *websocket.Conn
	userID uint
}

type frame struct {
	Event string `json:"event"`
}

func NewCartHub(bus *cartbus.Bus, log *logrus.Logger) *CartHub {
	return &CartHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		notify:     make(chan uint, 64),
		bus:        bus,
		busSubs:    make(map[uint]*cartbus.Subscription),
		log:        log,
	}
}

// Run owns the client table. The bus handler only enqueues the user id, so
// Emit never blocks on a slow socket; a full queue drops the ping, which is
// safe because the next mutation raises it again.
func (h *CartHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.userID] == nil {
				h.clients[sub.userID] = make(map[*websocket.Conn]bool)
				uid := sub.userID
				h.busSubs[uid] = h.bus.Subscribe(cartbus.CartTopic(uid), func() {
					select {
					case h.notify <- uid:
					default:
					}
				})
			}
			h.clients[sub.userID][sub.conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.userID][sub.conn]; ok {
				delete(h.clients[sub.userID], sub.conn)
				sub.conn.Close()
			}
			if len(h.clients[sub.userID]) == 0 {
				delete(h.clients, sub.userID)
				h.bus.Unsubscribe(h.busSubs[sub.userID])
				delete(h.busSubs, sub.userID)
			}
			h.mu.Unlock()

		case userID := <-h.notify:
			h.mu.Lock()
			for conn := range h.clients[userID] {
				if err := conn.WriteJSON(frame{Event: "cart-updated"}); err != nil {
					h.log.WithError(err).Warn("ws write failed, dropping connection")
					conn.Close()
					delete(h.clients[userID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /ws/cart (authenticated)
func (h *CartHub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).Warn("ws upgrade failed")
		return
	}

	sub := subscription{conn: conn, userID: userID}
	h.register <- sub

	// clients never send anything meaningful; the read loop just detects
	// the close
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
