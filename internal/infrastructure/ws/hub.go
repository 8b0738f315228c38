// Package ws distribui eventos de estoque para clientes WebSocket.
package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/rs/zerolog"

	"github.com/jhoicas/controle-epi-api/internal/application/inventory"
)

var _ inventory.StockNotifier = (*Hub)(nil)

// Conn é o que o Hub usa de *websocket.Conn.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Hub mantém as conexões abertas e faz broadcast das mensagens.
type Hub struct {
	clients    map[Conn]bool
	register   chan Conn
	unregister chan Conn
	broadcast  chan []byte
	done       chan struct{}
	mutex      sync.Mutex
	log        zerolog.Logger
}

// NewHub cria o hub; Run precisa estar rodando para as mensagens saírem.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[Conn]bool),
		register:   make(chan Conn),
		unregister: make(chan Conn),
		broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
		log:        log.With().Str("component", "ws").Logger(),
	}
}

// Run processa registros e broadcasts até Stop.
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mutex.Lock()
			h.clients[conn] = true
			n := len(h.clients)
			h.mutex.Unlock()
			h.log.Debug().Int("clients", n).Msg("cliente ws conectado")

		case conn := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				_ = conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.broadcast:
			h.mutex.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					_ = conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mutex.Unlock()

		case <-h.done:
			h.mutex.Lock()
			for conn := range h.clients {
				_ = conn.Close()
				delete(h.clients, conn)
			}
			h.mutex.Unlock()
			return
		}
	}
}

// Stop encerra Run e fecha as conexões.
func (h *Hub) Stop() { close(h.done) }

func (h *Hub) Register(c Conn) {
	select {
	case h.register <- c:
	case <-h.done:
		_ = c.Close()
	}
}

func (h *Hub) Unregister(c Conn) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Clients número de conexões registradas.
func (h *Hub) Clients() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// StockChanged serializa o evento e enfileira o broadcast. Descarta se a fila estiver cheia.
func (h *Hub) StockChanged(evt inventory.StockEvent) {
	payload, err := json.Marshal(evt)
	if err != nil {
		h.log.Error().Err(err).Msg("serializar evento de estoque")
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		h.log.Warn().Str("evento", evt.Kind).Msg("fila ws cheia, evento descartado")
	}
}

// Handler é a rota WebSocket: registra a conexão e lê até o cliente desconectar.
func (h *Hub) Handler(c *websocket.Conn) {
	h.Register(c)
	defer h.Unregister(c)
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
