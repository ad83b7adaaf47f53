package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 1 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 10 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{}

// Server publishes a series over http: GET /series returns the current
// snapshot as JSON, GET /ws streams snapshots over a websocket at the
// publish rate.
type Server struct {
	addr    string
	series  *Series
	publish time.Duration
	router  *mux.Router
}

// NewServer builds the routes for series. publish is the websocket push
// period.
func NewServer(addr string, series *Series, publish time.Duration) *Server {
	if publish <= 0 {
		publish = BucketSize
	}
	s := &Server{addr: addr, series: series, publish: publish, router: mux.NewRouter()}
	s.router.HandleFunc("/series", s.serveSnapshot).Methods(http.MethodGet)
	s.router.HandleFunc("/ws", s.serveWebsocket)
	return s
}

// Handler returns the router, mostly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Serve listens until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.router}
	errs := make(chan error, 1)
	go func() { errs <- srv.ListenAndServe() }()
	log.Printf("telemetry listening on %s", s.addr)

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) serveSnapshot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.series.Snapshot()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}
	defer ws.Close()

	if err := s.sync(r.Context(), ws); err != nil && !isClosed(err) {
		log.Printf("websocket client: %v", err)
	}
}

// sync pushes snapshots until the peer goes away. The reader only services
// control frames so pongs and the close handshake are observed.
func (s *Server) sync(ctx context.Context, ws *websocket.Conn) error {
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		ws.SetReadLimit(maxMessageSize)
		_ = ws.SetReadDeadline(time.Now().Add(pongWait))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return err
			}
		}
	})

	group.Go(func() error {
		defer ws.Close()
		pub := time.NewTicker(s.publish)
		ping := time.NewTicker(pingPeriod)
		defer pub.Stop()
		defer ping.Stop()
		for {
			select {
			case <-groupCtx.Done():
				_ = ws.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(writeWait))
				return nil
			case <-pub.C:
				_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
				if err := ws.WriteJSON(s.series.Snapshot()); err != nil {
					return err
				}
			case <-ping.C:
				if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					return err
				}
			}
		}
	})

	return group.Wait()
}

func isClosed(err error) bool {
	return websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}
