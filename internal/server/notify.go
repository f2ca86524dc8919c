package server

import (
	"net/http"
	"sync"

	"orbosis/pkg/types"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// wsEvent is a push to a connected dashboard: a session change, a
// redirect-countdown tick, or the final redirect instruction.
type wsEvent struct {
	Type      string         `json:"type"`
	Remaining int            `json:"remaining,omitempty"`
	To        string         `json:"to,omitempty"`
	User      *types.Profile `json:"user,omitempty"`
}

type notifier struct {
	logger *logrus.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func newNotifier(logger *logrus.Logger) *notifier {
	return &notifier{
		logger: logger,
		conns:  make(map[*websocket.Conn]struct{}),
	}
}

func (n *notifier) add(conn *websocket.Conn) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.conns[conn] = struct{}{}
}

func (n *notifier) remove(conn *websocket.Conn) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.conns, conn)
}

func (n *notifier) broadcast(event wsEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for conn := range n.conns {
		if err := n.writeLocked(conn, event); err != nil {
			n.logger.WithError(err).Debug("dropping dead notification connection")
			conn.Close()
			delete(n.conns, conn)
		}
	}
}

func (n *notifier) writeLocked(conn *websocket.Conn, event wsEvent) error {
	return conn.WriteJSON(event)
}

func (s *Service) handleNotificationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WithError(err).Error("failed to upgrade notification connection")
		return
	}

	// Prime the subscriber with the current session before it joins the
	// broadcast set, so the two writers never interleave.
	if err := conn.WriteJSON(wsEvent{Type: "session", User: s.session.Current()}); err != nil {
		s.logger.WithError(err).Debug("failed to prime notification connection")
		conn.Close()
		return
	}

	s.notifier.add(conn)
	defer func() {
		s.notifier.remove(conn)
		conn.Close()
	}()

	// Read loop exists only to observe the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
