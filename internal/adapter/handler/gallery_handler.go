package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/srgjo27/epic_events/internal/core/services"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// slideMessage is pushed to the browser whenever the visible slide changes.
// Length is set on the first message and after a refresh.
type slideMessage struct {
	Type   string `json:"type"`
	Index  int    `json:"index"`
	Length int    `json:"length,omitempty"`
}

// controlMessage is sent by the browser: hover, leave, next, prev, goto or
// refresh.
type controlMessage struct {
	Type  string `json:"type"`
	Index int    `json:"index"`
}

type GalleryHandler struct {
	content  *services.ContentService
	interval time.Duration
}

func NewGalleryHandler(content *services.ContentService, interval time.Duration) *GalleryHandler {
	return &GalleryHandler{content: content, interval: interval}
}

type galleryConn struct {
	conn *websocket.Conn
	send chan slideMessage
	done chan struct{}
}

func (c *galleryConn) trySend(msg slideMessage) bool {
	select {
	case <-c.done:
		return false
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *galleryConn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Serve drives one gallery carousel over a websocket. The carousel lives as
// long as the connection and is stopped when either the socket closes or the
// page session ends.
func (h *GalleryHandler) Serve(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r.Context())

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := &galleryConn{
		conn: conn,
		send: make(chan slideMessage, sendBufferSize),
		done: make(chan struct{}),
	}

	length := h.loadLength(ctx)

	carousel := services.NewCarousel(length, h.interval, services.WithOnChange(func(i int) {
		c.trySend(slideMessage{Type: "slide", Index: i})
	}))

	unregister := session.OnClose(func() {
		carousel.Close()
		conn.Close()
	})

	c.trySend(slideMessage{Type: "slide", Index: carousel.Index(), Length: length})
	go c.writePump()

	h.readPump(ctx, c, carousel)

	unregister()
	carousel.Close()
	close(c.done)
}

func (h *GalleryHandler) loadLength(ctx context.Context) int {
	ctx, cancel := context.WithTimeout(ctx, defaultRenderTimeout)
	defer cancel()

	f := h.content.GalleryFetcher()
	f.Start(ctx)

	res := f.Wait(ctx)
	f.Unmount()

	if !res.Ready() {
		return 0
	}

	return len(res.Data)
}

func (h *GalleryHandler) readPump(ctx context.Context, c *galleryConn, carousel *services.Carousel) {
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg controlMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Gallery socket closed unexpectedly: %v", err)
			}
			return
		}

		switch msg.Type {
		case "hover":
			carousel.Pause()
		case "leave":
			carousel.Resume()
		case "next":
			carousel.Next()
		case "prev":
			carousel.Prev()
		case "goto":
			carousel.GoTo(msg.Index)
		case "refresh":
			carousel.SetLength(h.loadLength(ctx))
			c.trySend(slideMessage{Type: "slide", Index: carousel.Index(), Length: carousel.Len()})
		}
	}
}
