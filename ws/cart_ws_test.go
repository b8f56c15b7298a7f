package ws

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AbuBakkarSiddique007/bhojonbox-server/pkg/cartbus"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T, userID uint) (*cartbus.Bus, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	bus := cartbus.New()
	hub := NewCartHub(bus, log)
	go hub.Run()

	r := gin.New()
	r.GET("/ws/cart", func(c *gin.Context) { c.Set("userId", userID) }, hub.HandleWebSocket)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return bus, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/cart"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// watch reads frames until one arrives, then closes done.
func watch(conn *websocket.Conn, done chan<- struct{}) {
	go func() {
		var f frame
		if err := conn.ReadJSON(&f); err == nil && f.Event == "cart-updated" {
			close(done)
		}
	}()
}

func TestCartHubPushesToEveryTabOfTheUser(t *testing.T) {
	bus, url := startHub(t, 1)

	// two tabs, one user
	tab1 := dial(t, url)
	tab2 := dial(t, url)

	got1 := make(chan struct{})
	got2 := make(chan struct{})
	watch(tab1, got1)
	watch(tab2, got2)

	// registration races the dial, so keep emitting until both tabs have
	// heard the ping; duplicates are harmless because frames carry no state
	deadline := time.After(5 * time.Second)
	seen1, seen2 := false, false
	for !(seen1 && seen2) {
		bus.Emit(cartbus.CartTopic(1))
		select {
		case <-got1:
			seen1 = true
			got1 = nil
		case <-got2:
			seen2 = true
			got2 = nil
		case <-time.After(50 * time.Millisecond):
		case <-deadline:
			t.Fatalf("tabs did not receive cart-updated (tab1=%v tab2=%v)", seen1, seen2)
		}
	}
}

func TestCartHubIgnoresOtherUsersTopics(t *testing.T) {
	bus, url := startHub(t, 1)
	conn := dial(t, url)

	got := make(chan struct{})
	watch(conn, got)

	// give registration a moment, then emit on someone else's topic
	time.Sleep(100 * time.Millisecond)
	bus.Emit(cartbus.CartTopic(2))

	select {
	case <-got:
		t.Fatal("received a notification for another user's cart")
	case <-time.After(200 * time.Millisecond):
	}
}
