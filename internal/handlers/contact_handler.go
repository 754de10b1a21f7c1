package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/wuwarren/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// ContactService defines the interface for contact service operations
type ContactService interface {
	List(ctx context.Context) ([]models.Contact, error)
	Create(ctx context.Context, entry *models.Contact) error
	Update(ctx context.Context, id string, req *models.UpdateContactRequest) error
}

// ContactHandler handles contact-related HTTP requests
type ContactHandler struct {
	BaseHandler
	contactService ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    BaseHandler{Logger: logger},
		contactService: contactService,
	}
}

// RegisterRoutes registers all contact handler routes
func (h *ContactHandler) RegisterRoutes(r chi.Router) {
	r.Route("/contact", func(r chi.Router) {
		r.Get("/", h.ListContact)
		r.Post("/", h.CreateContact)
		r.Put("/{id}", h.UpdateContact)
	})
}

// ListContact handles GET /api/contact
// @Summary List contact entries
// @Description Retrieve all stored contact information
// @Tags contact
// @Produce json
// @Success 200 {object} map[string][]models.Contact
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /contact [get]
func (h *ContactHandler) ListContact(w http.ResponseWriter, r *http.Request) {
	contact, err := h.contactService.List(r.Context())
	if err != nil {
		h.Logger.Error("failed to list contact entries", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list contact entries")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string][]models.Contact{"contact": contact})
}

// CreateContact handles POST /api/contact
// @Summary Create contact entry
// @Description Store a new contact entry with a client-generated ID
// @Tags contact
// @Accept json
// @Produce json
// @Param contact body models.Contact true "Contact entry to create"
// @Success 201 {object} models.Contact
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /contact [post]
func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var entry models.Contact
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.contactService.Create(r.Context(), &entry); err != nil {
		if strings.Contains(err.Error(), "required") {
			h.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("failed to create contact entry", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to create contact entry")
		return
	}

	h.RespondJSON(w, http.StatusCreated, entry)
}

// UpdateContact handles PUT /api/contact/{id}
// @Summary Update contact entry
// @Description Replace the fields of an existing contact entry
// @Tags contact
// @Accept json
// @Produce json
// @Param id path string true "Contact entry ID"
// @Param contact body models.UpdateContactRequest true "New contact fields"
// @Success 204 "Contact entry updated"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Contact entry not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /contact/{id} [put]
func (h *ContactHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.contactService.Update(r.Context(), id, &req); err != nil {
		if strings.Contains(err.Error(), "not found") {
			h.RespondError(w, http.StatusNotFound, "contact entry not found")
			return
		}
		if strings.Contains(err.Error(), "required") {
			h.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("failed to update contact entry", zap.Error(err), zap.String("id", id))
		h.RespondError(w, http.StatusInternalServerError, "failed to update contact entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
