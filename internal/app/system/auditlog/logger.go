// internal/app/system/auditlog/logger.go
// Package auditlog records who did what across the admin panels. Events
// land in the audit-log store (where the audit panel reads them) and in
// structured logs, controlled per category by configuration.
package auditlog

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/vendaro/cartdeck/internal/app/store/auditlogs"
	"github.com/vendaro/cartdeck/internal/app/system/auth"
	"github.com/vendaro/cartdeck/internal/app/system/network"
	"github.com/vendaro/cartdeck/internal/domain/models"
)

// Config holds audit logging configuration.
type Config struct {
	// Auth controls logging for authentication events (login, logout).
	// Values: "all" (store + zap), "store" (store only), "log" (zap only), "off".
	Auth string
	// Admin controls logging for admin action events (CRUD, settings, exports).
	// Same values as Auth.
	Admin string
}

// Logger provides convenience methods for recording audit events.
type Logger struct {
	store  *auditlogs.Store
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger.
func New(store *auditlogs.Store, zapLog *zap.Logger, config Config) *Logger {
	return &Logger{
		store:  store,
		zapLog: zapLog,
		config: config,
	}
}

func performerFrom(u *auth.SessionUser) models.Performer {
	if u == nil {
		return models.Performer{}
	}
	return models.Performer{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// logToZap mirrors the event into structured logs.
func (l *Logger) logToZap(e models.AuditEntry) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("action", e.Action),
		zap.String("entity_type", e.EntityType),
		zap.String("entity_name", e.EntityName),
		zap.String("status", e.Status),
		zap.String("ip", e.IP),
	}
	if e.RefID != "" {
		fields = append(fields, zap.String("ref_id", e.RefID))
	}
	if e.Performer.ID != "" {
		fields = append(fields, zap.String("performer_id", e.Performer.ID))
	}
	for k, v := range e.Metadata {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if e.Status == models.AuditStatusFailed {
		l.zapLog.Warn("audit event", fields...)
	} else {
		l.zapLog.Info("audit event", fields...)
	}
}

// Record stores an audit event based on configuration. A nil logger is
// a no-op so tests can skip audit wiring.
func (l *Logger) Record(e models.AuditEntry) {
	if l == nil {
		return
	}

	setting := l.config.Admin
	if e.EntityType == models.AuditEntitySession {
		setting = l.config.Auth
	}
	if setting == "" {
		setting = "all"
	}
	if setting == "off" {
		return
	}

	if setting == "all" || setting == "log" {
		l.logToZap(e)
	}
	if setting == "all" || setting == "store" {
		l.store.Append(e)
	}
}

// --- Authentication events ---

// LoginSuccess records a successful sign-in.
func (l *Logger) LoginSuccess(r *http.Request, admin models.Admin, method string) {
	l.Record(models.AuditEntry{
		Action:      models.AuditActionLogin,
		EntityType:  models.AuditEntitySession,
		EntityName:  admin.FullName,
		Status:      models.AuditStatusSuccess,
		Performer:   models.Performer{ID: admin.ID, Name: admin.FullName, Email: admin.Email, Role: admin.Role},
		IP:          network.GetClientIP(r),
		Description: "Signed in",
		Metadata:    map[string]string{"method": method},
	})
}

// LoginFailed records a failed sign-in attempt.
func (l *Logger) LoginFailed(r *http.Request, email, reason string) {
	l.Record(models.AuditEntry{
		Action:      models.AuditActionLogin,
		EntityType:  models.AuditEntitySession,
		EntityName:  email,
		Status:      models.AuditStatusFailed,
		Performer:   models.Performer{Email: email},
		IP:          network.GetClientIP(r),
		Description: "Failed sign-in, " + reason,
	})
}

// Logout records a sign-out.
func (l *Logger) Logout(r *http.Request, u *auth.SessionUser) {
	l.Record(models.AuditEntry{
		Action:      models.AuditActionLogout,
		EntityType:  models.AuditEntitySession,
		EntityName:  nameOf(u),
		Status:      models.AuditStatusSuccess,
		Performer:   performerFrom(u),
		IP:          network.GetClientIP(r),
		Description: "Signed out",
	})
}

// --- Admin action events ---

// Created records the creation of a record.
func (l *Logger) Created(r *http.Request, u *auth.SessionUser, entityType, entityName, refID string) {
	l.Record(models.AuditEntry{
		Action:      models.AuditActionCreate,
		EntityType:  entityType,
		EntityName:  entityName,
		RefID:       refID,
		Status:      models.AuditStatusSuccess,
		Performer:   performerFrom(u),
		IP:          network.GetClientIP(r),
		Description: fmt.Sprintf("Created %s %s", entityType, entityName),
	})
}

// Updated records a change to a record.
func (l *Logger) Updated(r *http.Request, u *auth.SessionUser, entityType, entityName, refID string) {
	l.Record(models.AuditEntry{
		Action:      models.AuditActionUpdate,
		EntityType:  entityType,
		EntityName:  entityName,
		RefID:       refID,
		Status:      models.AuditStatusSuccess,
		Performer:   performerFrom(u),
		IP:          network.GetClientIP(r),
		Description: fmt.Sprintf("Updated %s %s", entityType, entityName),
	})
}

// Deleted records the removal of a record.
func (l *Logger) Deleted(r *http.Request, u *auth.SessionUser, entityType, entityName, refID string) {
	l.Record(models.AuditEntry{
		Action:      models.AuditActionDelete,
		EntityType:  entityType,
		EntityName:  entityName,
		RefID:       refID,
		Status:      models.AuditStatusSuccess,
		Performer:   performerFrom(u),
		IP:          network.GetClientIP(r),
		Description: fmt.Sprintf("Deleted %s %s", entityType, entityName),
	})
}

// Exported records a CSV export.
func (l *Logger) Exported(r *http.Request, u *auth.SessionUser, entityType string, count int) {
	l.Record(models.AuditEntry{
		Action:      models.AuditActionExport,
		EntityType:  entityType,
		EntityName:  fmt.Sprintf("%s export", entityType),
		Status:      models.AuditStatusSuccess,
		Performer:   performerFrom(u),
		IP:          network.GetClientIP(r),
		Description: fmt.Sprintf("Exported %d %s records to CSV", count, entityType),
		Metadata:    map[string]string{"count": fmt.Sprintf("%d", count)},
	})
}

// SettingsUpdated records a change to the platform settings.
func (l *Logger) SettingsUpdated(r *http.Request, u *auth.SessionUser) {
	l.Record(models.AuditEntry{
		Action:      models.AuditActionSettingsUpdate,
		EntityType:  models.AuditEntitySettings,
		EntityName:  "Platform settings",
		Status:      models.AuditStatusSuccess,
		Performer:   performerFrom(u),
		IP:          network.GetClientIP(r),
		Description: "Updated platform settings",
	})
}

func nameOf(u *auth.SessionUser) string {
	if u == nil {
		return ""
	}
	return u.Name
}
