// Package http provides http transport for voice models and variations
package http

import (
	stdhttp "net/http"

	"voiceloom/internal/core/archetype"
	"voiceloom/internal/modkit/httpkit"
	perr "voiceloom/internal/platform/errors"
	trainingdomain "voiceloom/internal/services/training/domain"
	variationsdomain "voiceloom/internal/services/variations/domain"
	voicesdomain "voiceloom/internal/services/voices/domain"
)

// Deps are the service ports the handlers call into
type Deps struct {
	Registry   voicesdomain.RegistryPort
	Training   trainingdomain.ServicePort
	Variations variationsdomain.ServicePort
}

// Register mounts voice model endpoints on the given router
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.PostJSON[CreateModelInput](r, "/", h.create)
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)
	// refresh takes no body so it skips the JSON binder
	r.Put("/{id}", httpkit.Call(h.refresh))
	httpkit.Delete(r, "/{id}", h.remove)
	httpkit.PostJSON[GenerateInput](r, "/{id}/generate", h.generate)
	httpkit.Get(r, "/{id}/variations", h.variations)
}

type handlers struct{ deps Deps }

// CreateModelInput requests a full training run
type CreateModelInput struct {
	CreatorUsername string `json:"creator_username" validate:"required" example:"alicewrites"`
}

// CreateModelResponse returns the session and the model it produced
type CreateModelResponse struct {
	SessionID string                  `json:"session_id" example:"6b2d6cb0-0a6e-4a7e-9f3c-0f1f14f3d001"`
	Model     voicesdomain.VoiceModel `json:"model"`
}

// GenerateInput requests a variation batch or a single regeneration
type GenerateInput struct {
	Idea           string `json:"idea" validate:"required" example:"why small launches beat big ones"`
	RegenerateType string `json:"regenerate_type,omitempty" example:"short-punchy"`
}

// swagger:route POST /voice-models VoiceModels voiceModelCreate
// @Summary Train a voice model for a creator
// @Tags VoiceModels
// @Accept json
// @Produce json
// @Param payload body CreateModelInput true "creator to model"
// @Success 201 {object} CreateModelResponse "created"
// @Failure 400 "invalid handle"
// @Failure 404 "unknown account"
// @Failure 409 "model already exists"
// @Failure 422 "no qualifying posts"
// @Failure 429 "model quota reached"
// @Failure 502 "upstream unavailable"
// @Router /voice-models [post]
func (h *handlers) create(r *stdhttp.Request, in CreateModelInput) (any, error) {
	userID, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	if in.CreatorUsername == "" {
		return nil, perr.InvalidArgf("creator_username is required")
	}
	out, err := h.deps.Training.StartAnalysis(r.Context(), userID, in.CreatorUsername)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(CreateModelResponse{
		SessionID: out.Session.ID,
		Model:     out.Model,
	}), nil
}

// swagger:route GET /voice-models VoiceModels voiceModelList
// @Summary List the caller's voice models
// @Tags VoiceModels
// @Produce json
// @Success 200 {array} voicesdomain.Summary "ok"
// @Router /voice-models [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	userID, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.deps.Registry.List(r.Context(), userID)
}

// swagger:route GET /voice-models/{id} VoiceModels voiceModelGet
// @Summary Fetch one voice model
// @Tags VoiceModels
// @Produce json
// @Param id path string true "voice model id"
// @Success 200 {object} voicesdomain.VoiceModel "ok"
// @Failure 404 "not found or not owned"
// @Router /voice-models/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	userID, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	id := httpkit.Param(r, "id")
	model, err := h.deps.Registry.Get(r.Context(), id)
	if err != nil {
		return nil, err
	}
	// a foreign model reads as missing
	if model.UserID != userID {
		return nil, perr.NotFoundf("voice model %s not found", id)
	}
	return model, nil
}

// swagger:route PUT /voice-models/{id} VoiceModels voiceModelRefresh
// @Summary Re-analyze the creator and refresh the model in place
// @Tags VoiceModels
// @Produce json
// @Param id path string true "voice model id"
// @Success 200 {object} voicesdomain.VoiceModel "ok"
// @Failure 404 "not found or not owned"
// @Failure 422 "no qualifying posts"
// @Failure 502 "upstream unavailable"
// @Router /voice-models/{id} [put]
func (h *handlers) refresh(r *stdhttp.Request) (any, error) {
	userID, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.deps.Registry.Refresh(r.Context(), httpkit.Param(r, "id"), userID)
}

// swagger:route DELETE /voice-models/{id} VoiceModels voiceModelDelete
// @Summary Delete a voice model
// @Tags VoiceModels
// @Produce json
// @Param id path string true "voice model id"
// @Success 204 "deleted"
// @Failure 404 "not found or not owned"
// @Router /voice-models/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	userID, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	id := httpkit.Param(r, "id")
	ok, err := h.deps.Registry.Delete(r.Context(), id, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, perr.NotFoundf("voice model %s not found", id)
	}
	return httpkit.NoContent(), nil
}

// swagger:route POST /voice-models/{id}/generate VoiceModels voiceModelGenerate
// @Summary Generate variation drafts for an idea
// @Tags VoiceModels
// @Accept json
// @Produce json
// @Param id path string true "voice model id"
// @Param payload body GenerateInput true "idea, optionally a single archetype to redo"
// @Success 200 {object} variationsdomain.GenerateResult "batch result"
// @Success 200 {object} variationsdomain.TweetVariation "single regeneration"
// @Failure 400 "missing idea or unknown archetype"
// @Failure 404 "not found or not owned"
// @Failure 502 "every draft failed"
// @Router /voice-models/{id}/generate [post]
func (h *handlers) generate(r *stdhttp.Request, in GenerateInput) (any, error) {
	userID, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	id := httpkit.Param(r, "id")
	if in.RegenerateType != "" {
		if !archetype.Valid(in.RegenerateType) {
			return nil, perr.InvalidArgf("unknown archetype %q", in.RegenerateType)
		}
		return h.deps.Variations.Regenerate(r.Context(), userID, id, in.Idea, archetype.Archetype(in.RegenerateType))
	}
	return h.deps.Variations.Generate(r.Context(), userID, id, in.Idea)
}

// swagger:route GET /voice-models/{id}/variations VoiceModels voiceModelVariations
// @Summary List the stored variation history for a model
// @Tags VoiceModels
// @Produce json
// @Param id path string true "voice model id"
// @Success 200 {array} variationsdomain.TweetVariation "ok"
// @Failure 404 "not found or not owned"
// @Router /voice-models/{id}/variations [get]
func (h *handlers) variations(r *stdhttp.Request) (any, error) {
	userID, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.deps.Variations.ListByModel(r.Context(), userID, httpkit.Param(r, "id"))
}
