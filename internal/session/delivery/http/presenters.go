package http

import (
	"strings"
	"time"

	"ai-therapist/internal/model"
	"ai-therapist/internal/rag"
	"ai-therapist/internal/safety"
	"ai-therapist/internal/session"
	pkgErrors "ai-therapist/pkg/errors"
)

const (
	defaultExamples = 3
	minExamples     = 1
	maxExamples     = 10
	maxMessageLen   = 10000
)

// --- Request DTOs ---

type createReq struct {
	UserID   string         `json:"user_id"`
	Metadata map[string]any `json:"metadata"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() session.CreateInput {
	return session.CreateInput{
		UserID:   r.UserID,
		Metadata: r.Metadata,
	}
}

// ---

type chatReq struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message"    binding:"required"`
	UseRAG    *bool  `json:"use_rag"`
	NExamples *int   `json:"n_examples"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return errEmptyMessage
	}
	if len(r.Message) > maxMessageLen {
		return pkgErrors.NewBadRequest("Message is too long")
	}
	if r.NExamples != nil && (*r.NExamples < minExamples || *r.NExamples > maxExamples) {
		return pkgErrors.NewBadRequest("n_examples must be between 1 and 10")
	}
	return nil
}

func (r chatReq) toInput() session.ChatInput {
	useRAG := true
	if r.UseRAG != nil {
		useRAG = *r.UseRAG
	}
	n := defaultExamples
	if r.NExamples != nil {
		n = *r.NExamples
	}
	return session.ChatInput{
		SessionID:    r.SessionID,
		Message:      r.Message,
		UseRAG:       useRAG,
		ExampleCount: n,
	}
}

// --- Response DTOs ---

type sessionResp struct {
	SessionID    string    `json:"session_id"`
	CreatedAt    time.Time `json:"created_at"`
	MessageCount int       `json:"message_count"`
}

func (h *handler) newCreateResp(out session.CreateOutput) sessionResp {
	return sessionResp{
		SessionID:    out.SessionID,
		CreatedAt:    out.CreatedAt,
		MessageCount: out.MessageCount,
	}
}

type sessionItemResp struct {
	SessionID    string         `json:"session_id"`
	UserID       string         `json:"user_id,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	LastActivity time.Time      `json:"last_activity"`
	MessageCount int            `json:"message_count"`
}

type listResp struct {
	Sessions []sessionItemResp `json:"sessions"`
	Total    int               `json:"total"`
}

func (h *handler) newListResp(out session.ListOutput) listResp {
	items := make([]sessionItemResp, len(out.Sessions))
	for i, rec := range out.Sessions {
		items[i] = sessionItemResp{
			SessionID:    rec.SessionID,
			UserID:       rec.UserID,
			Metadata:     rec.Metadata,
			CreatedAt:    rec.CreatedAt,
			LastActivity: rec.LastActivity,
			MessageCount: rec.MessageCount,
		}
	}
	return listResp{Sessions: items, Total: len(items)}
}

type statusResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type safetyResp struct {
	IsCrisis        bool           `json:"is_crisis"`
	CrisisType      string         `json:"crisis_type,omitempty"`
	Confidence      float64        `json:"confidence"`
	Resources       []resourceResp `json:"resources,omitempty"`
	Recommendations []string       `json:"recommendations,omitempty"`
}

type resourceResp struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Text    string `json:"text,omitempty"`
	Website string `json:"website,omitempty"`
}

func newSafetyResp(a *safety.Assessment) *safetyResp {
	if a == nil {
		return nil
	}
	resources := make([]resourceResp, len(a.Resources))
	for i, r := range a.Resources {
		resources[i] = resourceResp{Name: r.Name, Phone: r.Phone, Text: r.Text, Website: r.Website}
	}
	return &safetyResp{
		IsCrisis:        a.IsCrisis,
		CrisisType:      a.CrisisType,
		Confidence:      a.Confidence,
		Resources:       resources,
		Recommendations: a.Recommendations,
	}
}

type chatResp struct {
	Response    string      `json:"response"`
	SessionID   string      `json:"session_id"`
	Timestamp   time.Time   `json:"timestamp"`
	SourcesUsed []string    `json:"sources_used"`
	Safety      *safetyResp `json:"safety,omitempty"`
}

func (h *handler) newChatResp(out session.ChatOutput) chatResp {
	return chatResp{
		Response:    out.Response,
		SessionID:   out.SessionID,
		Timestamp:   out.Timestamp,
		SourcesUsed: out.SourcesUsed,
		Safety:      newSafetyResp(out.Safety),
	}
}

type messageResp struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func newMessagesResp(turns []model.Turn) []messageResp {
	out := make([]messageResp, len(turns))
	for i, t := range turns {
		out[i] = messageResp{Role: string(t.Role), Content: t.Content, Timestamp: t.Timestamp}
	}
	return out
}

type historyResp struct {
	SessionID string        `json:"session_id"`
	Messages  []messageResp `json:"messages"`
	CreatedAt time.Time     `json:"created_at"`
}

func (h *handler) newHistoryResp(out session.HistoryOutput) historyResp {
	return historyResp{
		SessionID: out.SessionID,
		Messages:  newMessagesResp(out.Messages),
		CreatedAt: out.CreatedAt,
	}
}

type transcriptResp struct {
	SessionID string        `json:"session_id"`
	Messages  []messageResp `json:"messages"`
}

func (h *handler) newTranscriptResp(out session.TranscriptOutput) transcriptResp {
	return transcriptResp{SessionID: out.SessionID, Messages: newMessagesResp(out.Messages)}
}

type summaryResp struct {
	Summary   string `json:"summary"`
	SessionID string `json:"session_id"`
}

func (h *handler) newSummaryResp(out session.SummaryOutput) summaryResp {
	return summaryResp{Summary: out.Summary, SessionID: out.SessionID}
}

type ragStatsResp struct {
	TotalDocuments int        `json:"total_documents"`
	CollectionName string     `json:"collection_name"`
	EmbeddingModel string     `json:"embedding_model"`
	LastUpdated    *time.Time `json:"last_updated"`
}

func newRagStatsResp(s rag.Stats) ragStatsResp {
	return ragStatsResp{
		TotalDocuments: s.DocumentCount,
		CollectionName: s.CollectionName,
		EmbeddingModel: s.EmbeddingModel,
		LastUpdated:    s.LastUpdated,
	}
}

type datasetResultResp struct {
	Name    string `json:"name"`
	Indexed int    `json:"indexed"`
	Error   string `json:"error,omitempty"`
}

type ragInitResp struct {
	Status       string              `json:"status"`
	Message      string              `json:"message"`
	TotalIndexed int                 `json:"total_indexed"`
	Datasets     []datasetResultResp `json:"datasets"`
	DurationMs   int64               `json:"duration_ms"`
}

func (h *handler) newRagInitResp(out rag.IndexResult) ragInitResp {
	datasets := make([]datasetResultResp, len(out.Datasets))
	for i, d := range out.Datasets {
		datasets[i] = datasetResultResp{Name: d.Name, Indexed: d.Indexed, Error: d.Error}
	}
	return ragInitResp{
		Status:       "success",
		Message:      "RAG system initialized",
		TotalIndexed: out.TotalIndexed,
		Datasets:     datasets,
		DurationMs:   out.FinishedAt.Sub(out.StartedAt).Milliseconds(),
	}
}

type healthResp struct {
	Status         string       `json:"status"`
	ActiveSessions int          `json:"active_sessions"`
	RAG            ragStatsResp `json:"rag"`
}

func (h *handler) newHealthResp(out session.HealthOutput) healthResp {
	return healthResp{
		Status:         "healthy",
		ActiveSessions: out.ActiveSessions,
		RAG:            newRagStatsResp(out.RAG),
	}
}
