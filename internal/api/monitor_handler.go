package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/phrazzld/tarefas/internal/api/shared"
	"github.com/phrazzld/tarefas/internal/events"
	"github.com/phrazzld/tarefas/internal/metrics"
	"github.com/phrazzld/tarefas/internal/platform/logger"
)

// MonitorGreeting is the body served at the monitor root.
const MonitorGreeting = "Servidor de monitoramento está no ar. Conecte-se via WebSocket."

// WebSocket timing.
const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// EventSubscriber is the subscription side of events.Hub.
type EventSubscriber interface {
	Subscribe() *events.Subscription
	Unsubscribe(id uuid.UUID)
	Count() int
}

// LoopStarter starts the broadcast loop on first use.
type LoopStarter interface {
	EnsureRunning(ctx context.Context) bool
}

// MonitorHandler serves the metrics broadcast endpoints.
type MonitorHandler struct {
	subscriber EventSubscriber
	loop       LoopStarter
	metrics    *metrics.Metrics
	upgrader   websocket.Upgrader
	logger     *slog.Logger
}

// NewMonitorHandler creates a new MonitorHandler. m may be nil.
func NewMonitorHandler(
	subscriber EventSubscriber,
	loop LoopStarter,
	m *metrics.Metrics,
	logger *slog.Logger,
) *MonitorHandler {
	if subscriber == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("subscriber cannot be nil")
	}
	if loop == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("loop cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &MonitorHandler{
		subscriber: subscriber,
		loop:       loop,
		metrics:    m,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger: logger.With(slog.String("component", "monitor_handler")),
	}
}

// Routes mounts the monitor endpoints on r.
func (h *MonitorHandler) Routes(r chi.Router) {
	r.Get("/", h.Index)
	r.Get("/ws", h.ServeWS)
}

// Index handles GET / requests
func (h *MonitorHandler) Index(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithText(w, r, http.StatusOK, MonitorGreeting)
}

// ServeWS handles GET /ws requests. It upgrades the connection, subscribes it
// to system updates and makes sure the broadcast loop is running. Anything the
// client sends is read and discarded.
func (h *MonitorHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already replied with an HTTP error.
		log.Debug("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	sub := h.subscriber.Subscribe()
	h.updateSubscriberGauge()
	log = log.With(slog.String("subscriber_id", sub.ID.String()))
	log.Info("client connected", slog.String("remote_addr", r.RemoteAddr))

	defer func() {
		h.subscriber.Unsubscribe(sub.ID)
		h.updateSubscriberGauge()
		_ = conn.Close()
		log.Info("client disconnected")
	}()

	h.loop.EnsureRunning(r.Context())

	done := make(chan struct{})
	go h.readPump(conn, done)

	h.writePump(conn, sub, done, log)
}

// readPump discards client messages and closes done once the connection
// fails or the peer goes away.
func (h *MonitorHandler) readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump forwards subscription events to the client and keeps the
// connection alive with pings.
func (h *MonitorHandler) writePump(
	conn *websocket.Conn,
	sub *events.Subscription,
	done <-chan struct{},
	log *slog.Logger,
) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return

		case event, ok := <-sub.C:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(event); err != nil {
				log.Debug("failed to write event", slog.String("error", err.Error()))
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *MonitorHandler) updateSubscriberGauge() {
	if h.metrics != nil {
		h.metrics.Subscribers.Set(float64(h.subscriber.Count()))
	}
}
