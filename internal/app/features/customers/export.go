// internal/app/features/customers/export.go
package customers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	customerstore "github.com/vendaro/cartdeck/internal/app/store/customers"
	"github.com/vendaro/cartdeck/internal/app/system/auth"
	"github.com/vendaro/cartdeck/internal/app/system/listview"
	"github.com/vendaro/cartdeck/internal/domain/models"
)

// exportCSV handles GET /api/customers/export.csv. Same query filters
// as the table, no pagination.
func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	ctrl := listview.NewController(h.store.Records(), customerstore.ListConfig())
	listview.ApplyQuery(ctrl, r)
	rows := ctrl.Filtered()

	filename := fmt.Sprintf("customers_%s.csv", time.Now().Format("20060102_150405"))
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

	if err := cw.Write([]string{"id", "created_at", "site_id", "full_name", "email", "country", "total_orders", "total_spent_cents", "status"}); err != nil {
		h.logger.Error("CSV write failed (header)", zap.Error(err))
		return
	}

	for _, row := range rows {
		if err := cw.Write([]string{
			row.ID,
			row.CreatedAt.Format(time.RFC3339),
			row.SiteID,
			sanitizeCSVField(row.FullName),
			row.Email,
			row.Country,
			strconv.Itoa(row.TotalOrders),
			strconv.FormatInt(row.TotalSpentCents, 10),
			row.Status,
		}); err != nil {
			h.logger.Error("CSV write failed (row)", zap.Error(err))
			return
		}
	}

	u, _ := auth.CurrentUser(r)
	h.auditLogger.Exported(r, u, models.AuditEntityCustomer, len(rows))
	h.logger.Info("customers CSV exported", zap.Int("rows", len(rows)))
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
