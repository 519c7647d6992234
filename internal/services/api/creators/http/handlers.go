// Package http provides http transport for creator analysis
package http

import (
	stdhttp "net/http"
	"time"

	"voiceloom/internal/core/scoring"
	"voiceloom/internal/modkit/httpkit"
	trainingdomain "voiceloom/internal/services/training/domain"
)

// Register mounts creator endpoints on the given router
func Register(r httpkit.Router, svc trainingdomain.ServicePort) {
	h := &handlers{svc: svc}

	// collect-only dry run of the training pipeline
	httpkit.Post(r, "/{username}/analyze", h.analyze)
}

type handlers struct{ svc trainingdomain.ServicePort }

// CreatorView is the creator display info in analysis responses
type CreatorView struct {
	ID          string `json:"id"          example:"44196397"`
	Handle      string `json:"handle"      example:"alicewrites"`
	DisplayName string `json:"display_name" example:"Alice"`
	Followers   int64  `json:"followers"   example:"120345"`
	Bio         string `json:"bio"         example:"writer of things"`
}

// PostView is one curated post in analysis responses
type PostView struct {
	ID              string  `json:"id"               example:"1712345678901234567"`
	Text            string  `json:"text"             example:"shipping beats planning"`
	CreatedAt       string  `json:"created_at"       example:"2026-08-01T09:30:00Z"`
	TotalEngagement int64   `json:"total_engagement" example:"3000"`
	ViralScore      float64 `json:"viral_score"      example:"0.42"`
}

// AnalyzeResponse reports a collect-only analysis run
type AnalyzeResponse struct {
	SessionID       string       `json:"session_id"       example:"6b2d6cb0-0a6e-4a7e-9f3c-0f1f14f3d001"`
	Creator         CreatorView  `json:"creator"`
	Posts           []PostView   `json:"posts"`
	PostCount       int          `json:"post_count"       example:"30"`
	TotalEngagement int64        `json:"total_engagement" example:"48210"`
}

func toPostViews(posts []scoring.CuratedPost) []PostView {
	out := make([]PostView, 0, len(posts))
	for _, p := range posts {
		out = append(out, PostView{
			ID:              p.ID,
			Text:            p.Text,
			CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339),
			TotalEngagement: p.TotalEngagement,
			ViralScore:      p.ViralScore,
		})
	}
	return out
}

// swagger:route POST /creators/{username}/analyze Creators creatorsAnalyze
// @Summary Analyze a creator's recent posts without building a model
// @Tags Creators
// @Produce json
// @Param username path string true "creator handle, leading @ allowed"
// @Success 200 {object} AnalyzeResponse "ok"
// @Failure 400 "invalid handle"
// @Failure 404 "unknown account"
// @Failure 409 "voice model already exists"
// @Failure 422 "no qualifying posts"
// @Failure 502 "content source unavailable"
// @Router /creators/{username}/analyze [post]
func (h *handlers) analyze(r *stdhttp.Request) (any, error) {
	userID, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	res, err := h.svc.Analyze(r.Context(), userID, httpkit.Param(r, "username"))
	if err != nil {
		return nil, err
	}
	return AnalyzeResponse{
		SessionID:       res.Session.ID,
		Creator:         CreatorView(res.Creator),
		Posts:           toPostViews(res.Session.CollectedPosts),
		PostCount:       len(res.Session.CollectedPosts),
		TotalEngagement: res.TotalEngagement,
	}, nil
}
