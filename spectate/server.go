package spectate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/shooter-snake/core"
	"github.com/lixenwraith/shooter-snake/frame"
	"github.com/lixenwraith/shooter-snake/status"
)

// Sentinel errors
var (
	ErrServerClosed = errors.New("spectate server closed")
	ErrBadRequest   = errors.New("bad request")
)

// Config controls the listener and the websocket push rate
type Config struct {
	Addr     string
	Interval time.Duration
	Format   Format // default for websocket clients that do not ask
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Read-only feed, any origin may watch
		return true
	},
	ReadBufferSize:    1024,
	WriteBufferSize:   4096,
	EnableCompression: true,
}

// Server exposes the published round to spectators
type Server struct {
	cfg     Config
	pub     *Publisher
	reg     *status.Registry
	frames  *frame.Renderer
	conns   *ConnManager
	router  *gin.Engine
	clients *atomic.Int64

	mu     sync.Mutex
	http   *http.Server
	closed bool
}

// NewServer builds the routes; reg may be nil
func NewServer(cfg Config, pub *Publisher, reg *status.Registry) *Server {
	if reg == nil {
		reg = status.NewRegistry()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 100 * time.Millisecond
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		cfg:     cfg,
		pub:     pub,
		reg:     reg,
		frames:  frame.NewRenderer(),
		conns:   NewConnManager(),
		router:  router,
		clients: reg.Ints.Get(status.SpectatorClients),
	}

	router.GET("/snapshot", s.handleSnapshot)
	router.GET("/frame.png", s.handleFrame)
	router.GET("/status", s.handleStatus)
	router.GET("/ws", s.handleWebSocket)
	return s
}

// Handler returns the HTTP handler, used directly by tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured address and begins streaming
// It returns once the listener is bound; serving continues until ctx ends or Shutdown
func (s *Server) Start(ctx context.Context) (net.Addr, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrServerClosed
	}

	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("spectate listen %s: %w", s.cfg.Addr, err)
	}
	s.http = &http.Server{Handler: s.router, ReadHeaderTimeout: 5 * time.Second}

	core.Go(func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[spectate] serve: %v", err)
		}
	})
	core.Go(func() { s.broadcastLoop(ctx) })
	core.Go(func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		s.Shutdown(shutdownCtx)
	})

	log.Printf("[spectate] listening on %s", ln.Addr())
	return ln.Addr(), nil
}

// Shutdown stops the listener and drops every spectator
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrServerClosed
	}
	s.closed = true
	srv := s.http
	s.mu.Unlock()

	for _, c := range s.conns.Snapshot() {
		c.Close()
	}
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

func (s *Server) handleSnapshot(c *gin.Context) {
	snap, _, ok := s.pub.Latest()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no round yet"})
		return
	}
	f, err := ParseFormat(c.DefaultQuery("format", "json"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if f == FormatJSON {
		c.JSON(http.StatusOK, snap)
		return
	}
	data, err := Encode(snap, f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, msgpackContentType, data)
}

func (s *Server) handleFrame(c *gin.Context) {
	snap, _, ok := s.pub.Latest()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no round yet"})
		return
	}
	scale, err := strconv.ParseFloat(c.DefaultQuery("scale", "1"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scale must be a number"})
		return
	}

	var buf bytes.Buffer
	if err := s.frames.Encode(&buf, snap, scale); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, frame.ErrBadScale) {
			code = http.StatusBadRequest
		}
		c.JSON(code, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.reg.Snapshot())
}

func (s *Server) handleWebSocket(c *gin.Context) {
	f, err := ParseFormat(c.DefaultQuery("format", s.cfg.Format.String()))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[spectate] upgrade: %v", err)
		return
	}

	conn := NewConn(ws, f)
	s.conns.Add(conn)
	s.clients.Store(int64(s.conns.Count()))
	log.Printf("[spectate] client %s joined (%s)", conn.ID, f)

	// Latest state right away so a client never waits a full interval
	if snap, _, ok := s.pub.Latest(); ok {
		if data, err := Encode(snap, f); err == nil {
			conn.Send(data)
		}
	}

	conn.ReadLoop(func(c *Conn) {
		s.conns.Remove(c.ID)
		s.clients.Store(int64(s.conns.Count()))
		log.Printf("[spectate] client %s left", c.ID)
	})
}

// broadcastLoop pushes each new snapshot version to every client
func (s *Server) broadcastLoop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	var sent uint64
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sent = s.broadcast(sent)
		}
	}
}

// broadcast sends the latest snapshot when it is newer than last
// Each format is encoded at most once per round of sends
func (s *Server) broadcast(last uint64) uint64 {
	snap, version, ok := s.pub.Latest()
	if !ok || version == last {
		return last
	}
	conns := s.conns.Snapshot()
	if len(conns) == 0 {
		return version
	}

	var encoded [2][]byte
	for _, c := range conns {
		data := encoded[c.Format]
		if data == nil {
			var err error
			if data, err = Encode(snap, c.Format); err != nil {
				log.Printf("[spectate] encode: %v", err)
				return version
			}
			encoded[c.Format] = data
		}
		if err := c.Send(data); err != nil {
			s.conns.Remove(c.ID)
			s.clients.Store(int64(s.conns.Count()))
			c.Close()
		}
	}
	return version
}
