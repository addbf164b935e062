// internal/app/features/admins/handler.go
// Package admins provides the admin management API behind the Super
// Admin panel's team table.
package admins

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	adminstore "github.com/vendaro/cartdeck/internal/app/store/admins"
	"github.com/vendaro/cartdeck/internal/app/system/auditlog"
	"github.com/vendaro/cartdeck/internal/app/system/auth"
	"github.com/vendaro/cartdeck/internal/app/system/authutil"
	"github.com/vendaro/cartdeck/internal/app/system/jsonutil"
	"github.com/vendaro/cartdeck/internal/app/system/listview"
	"github.com/vendaro/cartdeck/internal/app/system/normalize"
	"github.com/vendaro/cartdeck/internal/domain/models"
)

// Handler handles admin management API requests.
type Handler struct {
	store       *adminstore.Store
	auditLogger *auditlog.Logger
	logger      *zap.Logger
}

// NewHandler creates a new admins handler.
func NewHandler(store *adminstore.Store, auditLogger *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		store:       store,
		auditLogger: auditLogger,
		logger:      logger,
	}
}

// list handles GET /api/admins. Query parameters: search, status, role,
// date_from, date_to, page, page_size.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ctrl := listview.NewController(h.store.Records(), adminstore.ListConfig())
	listview.ApplyQuery(ctrl, r)
	jsonutil.OK(w, ctrl.View())
}

// get handles GET /api/admins/{id}.
func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	admin, ok := h.store.Get(id)
	if !ok {
		jsonutil.NotFound(w, "admin not found")
		return
	}
	jsonutil.OK(w, admin)
}

type createRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Password string `json:"password"`
}

func (in *createRequest) validate() map[string]string {
	fields := map[string]string{}
	if normalize.Name(in.FullName) == "" {
		fields["full_name"] = "required"
	}
	if normalize.Email(in.Email) == "" {
		fields["email"] = "required"
	}
	if !models.IsValidAdminRole(normalize.Role(in.Role)) {
		fields["role"] = "unknown role"
	}
	if err := authutil.ValidatePassword(in.Password); err != nil {
		fields["password"] = err.Error()
	}
	return fields
}

// create handles POST /api/admins.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var in createRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if fields := in.validate(); len(fields) > 0 {
		jsonutil.ValidationError(w, fields)
		return
	}
	if _, exists := h.store.ByEmail(in.Email); exists {
		jsonutil.ValidationError(w, map[string]string{"email": "already in use"})
		return
	}

	hash, err := authutil.HashPassword(in.Password)
	if err != nil {
		h.logger.Error("password hash failed", zap.Error(err))
		jsonutil.InternalError(w, "could not create admin")
		return
	}

	admin := h.store.Create(adminstore.CreateInput{
		FullName:     in.FullName,
		Email:        in.Email,
		Role:         in.Role,
		Status:       in.Status,
		PasswordHash: hash,
	})

	u, _ := auth.CurrentUser(r)
	h.auditLogger.Created(r, u, models.AuditEntityAdmin, admin.FullName, admin.ID)
	h.logger.Info("admin created", zap.String("id", admin.ID), zap.String("role", admin.Role))

	jsonutil.Created(w, admin)
}

type updateRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
}

// update handles PUT /api/admins/{id}. Absent fields keep their values.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in updateRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}
	if in.Role != nil && !models.IsValidAdminRole(normalize.Role(*in.Role)) {
		jsonutil.ValidationError(w, map[string]string{"role": "unknown role"})
		return
	}

	admin, err := h.store.Update(id, adminstore.UpdateInput{
		FullName: in.FullName,
		Email:    in.Email,
		Role:     in.Role,
		Status:   in.Status,
	})
	if err != nil {
		if errors.Is(err, listview.ErrNotFound) {
			jsonutil.NotFound(w, "admin not found")
			return
		}
		h.logger.Error("admin update failed", zap.String("id", id), zap.Error(err))
		jsonutil.InternalError(w, "could not update admin")
		return
	}

	u, _ := auth.CurrentUser(r)
	h.auditLogger.Updated(r, u, models.AuditEntityAdmin, admin.FullName, admin.ID)

	jsonutil.OK(w, admin)
}

// delete handles DELETE /api/admins/{id}. Removal is immediate; the
// next view derive simply no longer includes the record.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	u, _ := auth.CurrentUser(r)
	if u != nil && u.ID == id {
		jsonutil.BadRequest(w, "cannot delete your own account")
		return
	}

	admin, ok := h.store.Get(id)
	if !ok {
		jsonutil.NotFound(w, "admin not found")
		return
	}
	if err := h.store.Delete(id); err != nil {
		jsonutil.NotFound(w, "admin not found")
		return
	}

	h.auditLogger.Deleted(r, u, models.AuditEntityAdmin, admin.FullName, admin.ID)
	h.logger.Info("admin deleted", zap.String("id", id))

	jsonutil.NoContent(w)
}
