package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"turbsim/model"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
}

func NewServer(addr string, upgrader websocket.Upgrader) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
	}
}

// serveWs handles websocket requests from the viewer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("upgrade")
		return
	}
	defer conn.Close()
	hub := NewHub()
	hub.conn = conn
	defer close(hub.done) // releases both hub goroutines with the connection
	go hub.handleRequest()
	go hub.handleResponse()
	var msg model.Msg
	for {
		if err := conn.ReadJSON(&msg); err != nil {
			log.WithError(err).Error("read from viewer")
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Serve() {
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		s.serveWs(w, r)
	})
	log.WithField("addr", s.addr).Info("serving profile viewer")
	if err := http.ListenAndServe(s.addr, nil); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
