package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"quest-tracker/internal/domain"
	"quest-tracker/internal/errors"
	"quest-tracker/internal/services"
	"quest-tracker/internal/validation"
)

// QuestHandler handles quest-related HTTP requests
type QuestHandler struct {
	service   services.QuestService
	validator *validation.Validator
	logger    *slog.Logger
}

// NewQuestHandler creates a new QuestHandler
func NewQuestHandler(service services.QuestService, logger *slog.Logger) *QuestHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuestHandler{
		service:   service,
		validator: validation.Default(),
		logger:    logger.With("component", "quest_handler"),
	}
}

// Routes registers the quest endpoints on r.
func (h *QuestHandler) Routes(r chi.Router) {
	r.Get("/", h.ListQuests)
	r.Post("/", h.CreateQuest)
	r.Get("/{id}", h.GetQuest)
	r.Put("/{id}", h.UpdateQuest)
	r.Delete("/{id}", h.DeleteQuest)
	r.Patch("/{id}/complete", h.CompleteQuest)
}

// ListQuests handles GET /api/quests?sort=&important=&search=
func (h *QuestHandler) ListQuests(w http.ResponseWriter, r *http.Request) {
	opts, err := parseListOptions(r)
	if err != nil {
		RespondWithErrorAndLog(w, r, h.logger, err)
		return
	}

	quests, err := h.service.ListQuests(r.Context(), opts)
	if err != nil {
		RespondWithErrorAndLog(w, r, h.logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, NewQuestResponses(quests))
}

// parseListOptions keeps parameters verbatim; the service owns normalization.
// An absent or empty important parameter stays nil.
func parseListOptions(r *http.Request) (domain.ListOptions, error) {
	query := r.URL.Query()
	opts := domain.ListOptions{
		Sort:   query.Get("sort"),
		Search: query.Get("search"),
	}

	if raw := query.Get("important"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return domain.ListOptions{}, errors.NewInvalidInputError("important", raw, "must be a boolean")
		}
		opts.Important = &b
	}

	return opts, nil
}

// GetQuest handles GET /api/quests/{id}
func (h *QuestHandler) GetQuest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		RespondWithErrorAndLog(w, r, h.logger, err)
		return
	}

	quest, err := h.service.GetQuest(r.Context(), id)
	if err != nil {
		RespondWithErrorAndLog(w, r, h.logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, NewQuestResponse(quest))
}

// CreateQuest handles POST /api/quests
func (h *QuestHandler) CreateQuest(w http.ResponseWriter, r *http.Request) {
	candidate, err := h.decodeQuest(r)
	if err != nil {
		RespondWithErrorAndLog(w, r, h.logger, err)
		return
	}

	created, err := h.service.CreateQuest(r.Context(), candidate)
	if err != nil {
		RespondWithErrorAndLog(w, r, h.logger, err)
		return
	}

	w.Header().Set("Location", "/api/quests/"+strconv.FormatInt(created.ID, 10))
	RespondWithJSON(w, http.StatusCreated, NewQuestResponse(created))
}

// UpdateQuest handles PUT /api/quests/{id}
func (h *QuestHandler) UpdateQuest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		RespondWithErrorAndLog(w, r, h.logger, err)
		return
	}

	candidate, err := h.decodeQuest(r)
	if err != nil {
		RespondWithErrorAndLog(w, r, h.logger, err)
		return
	}

	updated, err := h.service.UpdateQuest(r.Context(), id, candidate)
	if err != nil {
		RespondWithErrorAndLog(w, r, h.logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, NewQuestResponse(updated))
}

// DeleteQuest handles DELETE /api/quests/{id}
func (h *QuestHandler) DeleteQuest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		RespondWithErrorAndLog(w, r, h.logger, err)
		return
	}

	if err := h.service.DeleteQuest(r.Context(), id); err != nil {
		RespondWithErrorAndLog(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CompleteQuest handles PATCH /api/quests/{id}/complete
func (h *QuestHandler) CompleteQuest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		RespondWithErrorAndLog(w, r, h.logger, err)
		return
	}

	var req CompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithErrorAndLog(w, r, h.logger, errors.NewInvalidInputError("body", nil, "invalid JSON"))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithErrorAndLog(w, r, h.logger, errors.NewValidationError("invalid request", err))
		return
	}

	quest, err := h.service.CompleteQuest(r.Context(), id, *req.Completed)
	if err != nil {
		RespondWithErrorAndLog(w, r, h.logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, NewQuestResponse(quest))
}

func (h *QuestHandler) decodeQuest(r *http.Request) (domain.Quest, error) {
	var req QuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return domain.Quest{}, errors.NewInvalidInputError("body", nil, "invalid JSON")
	}
	if err := h.validator.Struct(req); err != nil {
		return domain.Quest{}, errors.NewValidationError("invalid request", err)
	}

	quest, err := req.ToDomain()
	if err != nil {
		return domain.Quest{}, errors.NewInvalidInputError("body", nil, err.Error())
	}
	return quest, nil
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError("id", raw, "must be an integer")
	}
	return id, nil
}
