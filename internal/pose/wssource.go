package pose

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// frame is the wire format a capture page streams over the websocket.
// Landmarks follow the MediaPipe Pose ordering; a frame with Detected
// false (or with no landmarks) marks "no person in view".
type frame struct {
	Detected  bool       `json:"detected"`
	Landmarks []Keypoint `json:"landmarks"`
}

// WSSource accepts pose streams over a websocket endpoint and publishes
// every received sample into a mailbox. The capture page (browser webcam
// plus an on-device pose model) is the producer; this side only ingests.
type WSSource struct {
	addr     string
	mailbox  *Mailbox
	logger   *log.Logger
	server   *http.Server
	upgrader websocket.Upgrader
}

// NewWSSource creates a websocket ingestion server bound to addr
// (e.g. ":8089") that feeds the given mailbox.
func NewWSSource(addr string, mailbox *Mailbox) *WSSource {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pose",
	})

	s := &WSSource{
		addr:    addr,
		mailbox: mailbox,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 1024,
			// The capture page is served from an arbitrary local origin.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/pose", s.handlePose)
	s.server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// ListenAndServe blocks serving pose connections until Shutdown is called.
func (s *WSSource) ListenAndServe() error {
	s.logger.Info("listening for pose streams", "addr", s.addr)
	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("pose: websocket server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the ingestion server.
func (s *WSSource) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// handlePose upgrades one connection and pumps its frames into the
// mailbox until the peer disconnects. Multiple connections are allowed;
// last writer wins, which is exactly the mailbox contract.
func (s *WSSource) handlePose(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	connID := uuid.NewString()
	s.logger.Info("pose stream connected", "id", connID, "remote", r.RemoteAddr)

	defer func() {
		conn.Close()
		// The producer is gone; drop back to the resting state rather
		// than replaying its last frame.
		s.mailbox.Publish(nil)
		s.logger.Info("pose stream disconnected", "id", connID)
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("pose stream read error", "id", connID, "error", err)
			}
			return
		}

		var f frame
		if err := json.Unmarshal(data, &f); err != nil {
			s.logger.Debug("dropping malformed pose frame", "id", connID, "error", err)
			continue
		}

		s.mailbox.Publish(sampleFromFrame(f))
	}
}

// sampleFromFrame converts a wire frame to a Sample, or nil when the
// frame carries no usable detection.
func sampleFromFrame(f frame) *Sample {
	if !f.Detected || len(f.Landmarks) == 0 {
		return nil
	}

	var s Sample
	n := len(f.Landmarks)
	if n > LandmarkCount {
		n = LandmarkCount
	}
	copy(s.Points[:n], f.Landmarks[:n])
	return &s
}
