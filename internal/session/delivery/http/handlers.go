package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "ai-therapist/pkg/errors"
	"ai-therapist/pkg/response"
)

var errMetricsDisabled = pkgErrors.NewNotFound("Metrics not enabled")

// Health godoc
// @Summary     Service health
// @Description Reports liveness, the number of live sessions and the retrieval index state.
// @Tags        System
// @Produce     json
// @Success     200 {object} healthResp
// @Router      /api/health [GET]
func (h *handler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, h.newHealthResp(h.uc.Health(ctx)))
}

// Metrics godoc
// @Summary     Usage metrics
// @Description Returns request, error, token and cost counters since process start.
// @Tags        System
// @Produce     json
// @Success     200 {object} metrics.Snapshot
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/metrics [GET]
func (h *handler) Metrics(c *gin.Context) {
	if h.metrics == nil {
		response.Error(c, errMetricsDisabled)
		return
	}
	response.OK(c, h.metrics.Snapshot())
}

// CreateSession godoc
// @Summary     Create a therapy session
// @Description Creates a session with its own conversation. The body is optional.
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       body body createReq false "Optional user id and metadata"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/sessions/create [POST]
func (h *handler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		h.writeReqError(c, err)
		return
	}

	output, err := h.uc.CreateSession(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// ListSessions godoc
// @Summary     List live sessions
// @Description Returns the metadata of every live session, oldest first.
// @Tags        Sessions
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/sessions [GET]
func (h *handler) ListSessions(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, h.newListResp(h.uc.ListSessions(ctx)))
}

// DeleteSession godoc
// @Summary     Delete a session
// @Description Ends the session and discards its conversation.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} statusResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/sessions/{id} [DELETE]
func (h *handler) DeleteSession(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		h.writeReqError(c, err)
		return
	}

	if err := h.uc.DeleteSession(ctx, id); err != nil {
		h.l.Warnf(ctx, "uc.DeleteSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, statusResp{Status: "success", Message: "Session deleted"})
}

// Chat godoc
// @Summary     Send a message
// @Description Sends one user message to the session and returns the therapist reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message, session id and retrieval options"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - a turn is already running"
// @Failure     429 {object} response.Resp "Upstream rate limited"
// @Failure     502 {object} response.Resp "Upstream authentication failed"
// @Failure     504 {object} response.Resp "Generation timed out"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.writeReqError(c, err)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapChatError(err))
		return
	}

	response.OK(c, h.newChatResp(output))
}

// GetHistory godoc
// @Summary     Conversation history
// @Description Returns the retained turns of a session, oldest first.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/sessions/{id}/history [GET]
func (h *handler) GetHistory(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		h.writeReqError(c, err)
		return
	}

	output, err := h.uc.GetHistory(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.GetHistory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// GetSummary godoc
// @Summary     Summarize a session
// @Description Asks the model for a short summary of the conversation so far.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} summaryResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/sessions/{id}/summary [POST]
func (h *handler) GetSummary(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		h.writeReqError(c, err)
		return
	}

	output, err := h.uc.GetSummary(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetSummary: %v", err)
		response.Error(c, h.mapSummaryError(err))
		return
	}

	response.OK(c, h.newSummaryResp(output))
}

// ResetSession godoc
// @Summary     Reset a session
// @Description Clears the conversation but keeps the session id and its message count.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} statusResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/sessions/{id}/reset [POST]
func (h *handler) ResetSession(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		h.writeReqError(c, err)
		return
	}

	if err := h.uc.ResetSession(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.ResetSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, statusResp{Status: "success", Message: "Session reset"})
}

// GetTranscript godoc
// @Summary     Archived transcript
// @Description Returns every archived turn of a session, including turns dropped from the live window.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} transcriptResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/sessions/{id}/transcript [GET]
func (h *handler) GetTranscript(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		h.writeReqError(c, err)
		return
	}

	output, err := h.uc.GetTranscript(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetTranscript: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTranscriptResp(output))
}

// InitializeRag godoc
// @Summary     Build the retrieval index
// @Description Downloads the configured datasets, embeds them and upserts them into the vector store.
// @Tags        RAG
// @Produce     json
// @Success     200 {object} ragInitResp
// @Failure     400 {object} response.Resp "Unknown dataset"
// @Failure     409 {object} response.Resp "Conflict - indexing already running"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/rag/initialize [POST]
func (h *handler) InitializeRag(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.InitializeRag(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.InitializeRag: %v", err)
		response.Error(c, h.mapRagError(err))
		return
	}

	response.OK(c, h.newRagInitResp(output))
}

// GetRagStats godoc
// @Summary     Retrieval index statistics
// @Tags        RAG
// @Produce     json
// @Success     200 {object} ragStatsResp
// @Router      /api/rag/stats [GET]
func (h *handler) GetRagStats(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, newRagStatsResp(h.uc.GetRagStats(ctx)))
}
