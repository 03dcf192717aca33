package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	// Time allowed to write a message to the client.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the client.
	pongWait = 60 * time.Second

	// Send pings to client with this period. Must be less than pongWait.
	pingPeriod = 15 * time.Second

	// Maximum message size allowed from client.
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeConsole upgrades the request and plays the named player until the
// connection closes. A configured operator who also sends the operator
// token joins as an operator; nobody else does.
func (s *Server) ServeConsole(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := q.Get("name")

	// an empty locale renders in the fallback language
	player, err := s.Join(name, q.Get("locale"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if s.operatorLogin(name, q.Get("token")) {
		player.op.Store(true)
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.Leave(player)
		log.WithError(err).WithField("component", "socket").Warn("upgrade failed")
		return
	}

	st := &stream{
		ctx:    r.Context(),
		conn:   conn,
		server: s,
		player: player,
	}
	st.run()
}

type stream struct {
	// request context
	ctx context.Context
	// the websocket connection.
	conn   *websocket.Conn
	server *Server
	player *Player
}

func (s *stream) run() {
	defer func() {
		s.conn.Close()
		s.server.Leave(s.player)
	}()

	// to cancel everything
	stopCtx, cancel := context.WithCancel(context.Background())

	wg := sync.WaitGroup{}
	wg.Add(2)

	go s.outboxToClientLoop(cancel, &wg, stopCtx)
	go s.clientToServerLoop(cancel, &wg, stopCtx)
	wg.Wait()
}

func (s *stream) clientToServerLoop(cancel context.CancelFunc, wg *sync.WaitGroup, stopCtx context.Context) {
	defer func() {
		cancel()
		wg.Done()
	}()

	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error { s.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		select {
		case <-stopCtx.Done():
			return
		default:
		}

		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).WithField("player", s.player.Name()).Warn("console closed")
			}
			return
		}

		var f Frame
		if err := json.Unmarshal(msg, &f); err != nil {
			s.player.send(Frame{Type: FrameError, Text: "malformed frame"})
			continue
		}

		switch f.Type {
		case FrameCommand:
			s.server.Execute(s.player, f.Line)
		case FrameComplete:
			s.player.send(Frame{
				Type:        FrameSuggestions,
				Line:        f.Line,
				Suggestions: s.server.Complete(s.player, f.Line),
			})
		default:
			s.player.send(Frame{Type: FrameError, Text: "unknown frame type " + f.Type})
		}
	}
}

func (s *stream) outboxToClientLoop(cancel context.CancelFunc, wg *sync.WaitGroup, stopCtx context.Context) {
	defer func() {
		s.conn.Close()
		cancel()
		wg.Done()
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-stopCtx.Done():
			return
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case f := <-s.player.Messages():
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteJSON(f); err != nil {
				return
			}
		}
	}
}
