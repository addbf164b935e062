// internal/app/features/auditlogs/export.go
package auditlogs

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	auditstore "github.com/vendaro/cartdeck/internal/app/store/auditlogs"
	"github.com/vendaro/cartdeck/internal/app/system/auth"
	"github.com/vendaro/cartdeck/internal/app/system/listview"
	"github.com/vendaro/cartdeck/internal/domain/models"
)

// exportCSV handles GET /api/auditlogs/export.csv. The export honors
// the same query filters as the table but ignores pagination, so the
// file holds the full filtered result set.
func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	ctrl := listview.NewController(h.store.Records(), auditstore.ListConfig())
	listview.ApplyQuery(ctrl, r)
	rows := ctrl.Filtered()

	filename := fmt.Sprintf("audit_logs_%s.csv", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(filename)))

	// UTF-8 BOM for Excel
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		h.logger.Error("CSV write failed (BOM)", zap.Error(err))
		return
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	defer cw.Flush()

	if err := cw.Write([]string{"id", "created_at", "action", "entity_type", "entity_name", "ref_id", "status", "performed_by", "performer_email", "ip", "description"}); err != nil {
		h.logger.Error("CSV write failed (header)", zap.Error(err))
		return
	}

	for _, row := range rows {
		if err := cw.Write([]string{
			row.ID,
			row.CreatedAt.Format(time.RFC3339),
			row.Action,
			row.EntityType,
			sanitizeCSVField(row.EntityName),
			row.RefID,
			row.Status,
			sanitizeCSVField(row.Performer.Name),
			row.Performer.Email,
			row.IP,
			sanitizeCSVField(row.Description),
		}); err != nil {
			h.logger.Error("CSV write failed (row)", zap.Error(err))
			return
		}
	}

	u, _ := auth.CurrentUser(r)
	h.auditLogger.Exported(r, u, models.AuditEntityAuditLog, len(rows))
	h.logger.Info("audit logs CSV exported", zap.Int("rows", len(rows)))
}

// sanitizeCSVField guards against spreadsheet formula injection.
func sanitizeCSVField(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@':
		return "'" + s
	}
	return s
}
