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

// AdminService defines the interface for admin service operations
type AdminService interface {
	List(ctx context.Context) ([]models.Admin, error)
	Create(ctx context.Context, req *models.CreateAdminRequest) error
	UpdatePassword(ctx context.Context, account, password string) error
	Delete(ctx context.Context, account string) error
}

// AdminHandler handles admin account HTTP requests
type AdminHandler struct {
	BaseHandler
	adminService AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  BaseHandler{Logger: logger},
		adminService: adminService,
	}
}

// RegisterRoutes registers all admin handler routes
func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Route("/admins", func(r chi.Router) {
		r.Get("/", h.ListAdmins)
		r.Post("/", h.CreateAdmin)
		r.Put("/{account}", h.UpdateAdminPassword)
		r.Delete("/{account}", h.DeleteAdmin)
	})
}

// ListAdmins handles GET /api/admins
// @Summary List admin accounts
// @Description Retrieve all admin account names. Password hashes are never returned.
// @Tags admins
// @Produce json
// @Success 200 {object} map[string][]models.Admin
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admins [get]
func (h *AdminHandler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.adminService.List(r.Context())
	if err != nil {
		h.Logger.Error("failed to list admins", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list admins")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string][]models.Admin{"admins": admins})
}

// CreateAdmin handles POST /api/admins
// @Summary Create admin account
// @Description Store a new admin account with a bcrypt-hashed password
// @Tags admins
// @Accept json
// @Produce json
// @Param admin body models.CreateAdminRequest true "Account and password"
// @Success 201 "Admin created"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admins [post]
func (h *AdminHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.adminService.Create(r.Context(), &req); err != nil {
		if strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "at least") {
			h.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("failed to create admin", zap.Error(err), zap.String("account", req.Account))
		h.RespondError(w, http.StatusInternalServerError, "failed to create admin")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// UpdateAdminPassword handles PUT /api/admins/{account}
// @Summary Update admin password
// @Description Replace the password of an existing admin account
// @Tags admins
// @Accept json
// @Produce json
// @Param account path string true "Account name"
// @Param password body models.UpdateAdminRequest true "New password"
// @Success 204 "Password updated"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Admin not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admins/{account} [put]
func (h *AdminHandler) UpdateAdminPassword(w http.ResponseWriter, r *http.Request) {
	account := chi.URLParam(r, "account")

	var req models.UpdateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.adminService.UpdatePassword(r.Context(), account, req.Password); err != nil {
		if strings.Contains(err.Error(), "not found") {
			h.RespondError(w, http.StatusNotFound, "admin not found")
			return
		}
		if strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "at least") {
			h.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("failed to update admin password", zap.Error(err), zap.String("account", account))
		h.RespondError(w, http.StatusInternalServerError, "failed to update password")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteAdmin handles DELETE /api/admins/{account}
// @Summary Delete admin account
// @Description Remove an admin account
// @Tags admins
// @Produce json
// @Param account path string true "Account name"
// @Success 204 "Admin deleted"
// @Failure 404 {object} map[string]string "Admin not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admins/{account} [delete]
func (h *AdminHandler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	account := chi.URLParam(r, "account")

	if err := h.adminService.Delete(r.Context(), account); err != nil {
		if strings.Contains(err.Error(), "not found") {
			h.RespondError(w, http.StatusNotFound, "admin not found")
			return
		}
		h.Logger.Error("failed to delete admin", zap.Error(err), zap.String("account", account))
		h.RespondError(w, http.StatusInternalServerError, "failed to delete admin")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
