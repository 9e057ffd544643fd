package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"vtask/internal/intent"
	"vtask/internal/session"
	"vtask/internal/task"
	"vtask/internal/translator"
)

const (
	// maxUtteranceSize caps an incoming utterance.
	maxUtteranceSize = 10 << 10 // 10KB

	shutdownTimeout = 5 * time.Second
)

// lockedSession serializes utterances: the engine allows a single
// outstanding command at a time, and gin handles requests concurrently.
type lockedSession struct {
	mu sync.Mutex
	s  *session.Session
}

type textRequest struct {
	Text string `json:"text"`
}

// taskJSON is the wire form of a task.
type taskJSON struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	ScheduledTime string `json:"scheduledTime,omitempty"`
	Priority      string `json:"priority"`
	Status        string `json:"status"`
}

func toTaskJSON(tasks []task.Task) []taskJSON {
	out := make([]taskJSON, len(tasks))
	for i, t := range tasks {
		out[i] = taskJSON{
			ID:            t.ID,
			Title:         t.Title,
			ScheduledTime: t.ScheduledTime,
			Priority:      t.Priority,
			Status:        t.Status,
		}
	}
	return out
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "vtask backend running",
	})
}

// handleTasks returns the visible sequence and the last-action summary.
func (s *Server) handleTasks(c *gin.Context) {
	s.sess.mu.Lock()
	defer s.sess.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"tasks":   toTaskJSON(s.sess.s.Visible()),
		"summary": s.sess.s.Summary(),
	})
}

// handleParseIntent translates an utterance without touching session
// state, mirroring the original backend's only route.
func (s *Server) handleParseIntent(c *gin.Context) {
	text, ok := s.bindText(c)
	if !ok {
		return
	}

	in, err := s.tr.Parse(c.Request.Context(), translator.NormalizeUtterance(text), nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "intent parsing failed"})
		return
	}

	in, _ = intent.Sanitize(in)
	c.JSON(http.StatusOK, gin.H{"intent": in})
}

// handleCommand runs the full cycle against the server's session. On a
// translator failure the session is untouched and the client gets a
// generic backend error to re-issue against.
func (s *Server) handleCommand(c *gin.Context) {
	text, ok := s.bindText(c)
	if !ok {
		return
	}

	s.sess.mu.Lock()
	defer s.sess.mu.Unlock()

	if err := s.sess.s.HandleUtterance(c.Request.Context(), text); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "intent parsing failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks":   toTaskJSON(s.sess.s.Visible()),
		"summary": s.sess.s.Summary(),
	})
}

func (s *Server) bindText(c *gin.Context) (string, bool) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return "", false
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "text required"})
		return "", false
	}
	if len(req.Text) > maxUtteranceSize {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "utterance too long"})
		return "", false
	}
	return req.Text, true
}
