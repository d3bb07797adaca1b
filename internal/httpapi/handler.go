// Package httpapi exposes the dialog engine over HTTP. It is a thin
// presentation collaborator: it owns session lookup, state persistence and
// escalation recording around each turn, while all conversation semantics
// stay in the dialog engine.
package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carebridge-sg/carebot-go/internal/dialog"
	apperrors "github.com/carebridge-sg/carebot-go/internal/errors"
	"github.com/carebridge-sg/carebot-go/internal/escalate"
	"github.com/carebridge-sg/carebot-go/internal/i18n"
	"github.com/carebridge-sg/carebot-go/internal/logger"
	"github.com/carebridge-sg/carebot-go/internal/metrics"
	"github.com/carebridge-sg/carebot-go/internal/ratelimit"
	"github.com/carebridge-sg/carebot-go/internal/session"
)

// Route names used for metrics labels.
const (
	routeSessions   = "/api/sessions"
	routeChatText   = "/api/chat/text"
	routeChatAction = "/api/chat/action"
)

// Handler handles the chat API endpoints.
type Handler struct {
	engine   *dialog.Engine
	sessions *session.Store
	recorder escalate.Recorder
	limiter  *ratelimit.PerSessionLimiter
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

// Config holds the collaborators for a new Handler.
type Config struct {
	Engine   *dialog.Engine
	Sessions *session.Store
	Recorder escalate.Recorder            // optional; nil disables ticket recording
	Limiter  *ratelimit.PerSessionLimiter // optional; nil disables throttling
	Metrics  *metrics.Metrics
	Logger   *logger.Logger
}

// NewHandler creates a new chat API handler.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		engine:   cfg.Engine,
		sessions: cfg.Sessions,
		recorder: cfg.Recorder,
		limiter:  cfg.Limiter,
		metrics:  cfg.Metrics,
		logger:   cfg.Logger,
	}
}

// Register mounts the chat API routes on the router.
func (h *Handler) Register(router gin.IRouter) {
	api := router.Group("/api")
	api.POST("/sessions", h.CreateSession)
	api.POST("/chat/text", h.ChatText)
	api.POST("/chat/action", h.ChatAction)
}

type sessionRequest struct {
	Lang string `json:"lang"`
}

type textRequest struct {
	SessionID string `json:"session_id"`
	Lang      string `json:"lang"`
	Text      string `json:"text"`
}

type actionRequest struct {
	SessionID string        `json:"session_id"`
	Action    dialog.Action `json:"action"`
}

// turnResponse is the response body for every chat endpoint. State is
// echoed back so clients can render step-aware UI without tracking it
// themselves; the server-held copy stays authoritative.
type turnResponse struct {
	SessionID string         `json:"session_id"`
	Message   dialog.Message `json:"message"`
	State     dialog.State   `json:"state"`
}

// CreateSession opens a fresh session and returns the welcome message.
// The body is optional; an empty or absent lang falls back to the engine
// default.
func (h *Handler) CreateSession(c *gin.Context) {
	var req sessionRequest
	// Empty bodies are allowed, so binding errors are not faults here.
	_ = c.ShouldBindJSON(&req)

	lang := h.resolveLang(req.Lang)
	state := h.engine.InitState(lang)
	id := h.sessions.Create(state)

	h.logger.WithSessionID(id).WithField("lang", string(lang)).Debug("Session created")
	c.JSON(http.StatusOK, turnResponse{
		SessionID: id,
		Message:   h.engine.Welcome(lang),
		State:     state,
	})
}

// ChatText processes one free-text turn. When session_id is absent a new
// session is opened implicitly, so the first utterance can double as the
// session opener.
func (h *Handler) ChatText(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, routeChatText, err)
		return
	}

	id := req.SessionID
	var state dialog.State
	if id == "" {
		state = h.engine.InitState(h.resolveLang(req.Lang))
		id = h.sessions.Create(state)
		h.logger.WithSessionID(id).Debug("Session created implicitly by text turn")
	} else {
		var err error
		state, err = h.sessions.Get(id)
		if err != nil {
			h.sessionNotFound(c, routeChatText, id, err)
			return
		}
	}

	if !h.allowTurn(c, routeChatText, id) {
		return
	}

	start := time.Now()
	turn := h.engine.HandleText(state, req.Text)
	h.finishTurn(c, routeChatText, "text", id, turn, start)
}

// ChatAction processes one discrete UI action turn.
func (h *Handler) ChatAction(c *gin.Context) {
	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, routeChatAction, err)
		return
	}
	if req.SessionID == "" {
		h.badRequest(c, routeChatAction, errors.New("session_id is required"))
		return
	}
	if req.Action.Type == "" {
		h.badRequest(c, routeChatAction, errors.New("action.type is required"))
		return
	}

	state, err := h.sessions.Get(req.SessionID)
	if err != nil {
		h.sessionNotFound(c, routeChatAction, req.SessionID, err)
		return
	}

	if !h.allowTurn(c, routeChatAction, req.SessionID) {
		return
	}

	start := time.Now()
	turn := h.engine.HandleAction(state, req.Action)
	h.finishTurn(c, routeChatAction, "action", req.SessionID, turn, start)
}

// finishTurn persists the new state, records the escalation recommendation
// if any, and writes the response.
func (h *Handler) finishTurn(c *gin.Context, route, inputType, id string, turn dialog.Turn, start time.Time) {
	if err := h.sessions.Put(id, turn.State); err != nil {
		// The sweeper can race a long turn; treat it the same as a stale id.
		h.sessionNotFound(c, route, id, err)
		return
	}

	h.metrics.RecordTurn(inputType, string(turn.State.Step), time.Since(start).Seconds())

	if turn.Recommendation != nil {
		h.metrics.RecordEscalation(turn.Recommendation.Reason)
		if h.recorder != nil {
			ticket, err := h.recorder.Record(c.Request.Context(), id, *turn.Recommendation, turn.State.LastQuery)
			if err != nil {
				// Ticket loss must not fail the user's turn.
				h.logger.WithSessionID(id).WithError(err).Error("Failed to record escalation ticket")
			} else {
				h.logger.WithSessionID(id).
					WithField("ticket_id", ticket.ID).
					WithField("reason", ticket.Reason).
					Info("Escalation recorded")
			}
		}
	}

	c.JSON(http.StatusOK, turnResponse{
		SessionID: id,
		Message:   turn.Message,
		State:     turn.State,
	})
}

// allowTurn enforces the per-session rate limit. Returns false after
// writing the 429 response.
func (h *Handler) allowTurn(c *gin.Context, route, id string) bool {
	if h.limiter == nil || h.limiter.Allow(id) {
		return true
	}
	h.metrics.RecordHTTPError("rate_limited", route)
	h.logger.WithSessionID(id).Warn("Session rate limited")
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, slow down"})
	return false
}

func (h *Handler) resolveLang(tag string) i18n.Lang {
	if tag == "" {
		return ""
	}
	return i18n.Normalize(tag)
}

func (h *Handler) badRequest(c *gin.Context, route string, err error) {
	h.metrics.RecordHTTPError("bad_request", route)
	h.logger.WithError(err).Warn("Bad request")
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (h *Handler) sessionNotFound(c *gin.Context, route, id string, err error) {
	if !errors.Is(err, apperrors.ErrSessionNotFound) {
		h.metrics.RecordHTTPError("internal", route)
		h.logger.WithSessionID(id).WithError(err).Error("Session lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	h.metrics.RecordHTTPError("not_found", route)
	h.logger.WithSessionID(id).Debug("Unknown or expired session")
	c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
}
