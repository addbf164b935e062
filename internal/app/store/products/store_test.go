// internal/app/store/products/store_test.go
package products

import (
	"testing"
	"time"

	"github.com/vendaro/cartdeck/internal/app/system/listview"
	"github.com/vendaro/cartdeck/internal/domain/models"
)

func TestCreateNormalizesSKU(t *testing.T) {
	s := New()

	p := s.Create(CreateInput{
		SiteID: "SITE-001",
		Name:   "Merino Scarf",
		SKU:    "  vt-scarf-001 ",
	})

	if p.ID != "PRD-001" {
		t.Errorf("ID = %q", p.ID)
	}
	if p.SKU != "VT-SCARF-001" {
		t.Errorf("SKU = %q, want VT-SCARF-001", p.SKU)
	}
	if p.Status != models.ProductStatusDraft {
		t.Errorf("Status = %q, want draft (default)", p.Status)
	}
}

func TestLowStockCounter(t *testing.T) {
	s := New()
	s.Create(CreateInput{SiteID: "SITE-001", Name: "A", SKU: "A-1", Stock: 3, Status: models.ProductStatusActive})
	s.Create(CreateInput{SiteID: "SITE-001", Name: "B", SKU: "B-1", Stock: models.LowStockThreshold, Status: models.ProductStatusActive})
	s.Create(CreateInput{SiteID: "SITE-001", Name: "C", SKU: "C-1", Stock: 40, Status: models.ProductStatusActive})
	s.Create(CreateInput{SiteID: "SITE-001", Name: "D", SKU: "D-1", Stock: 0, Status: models.ProductStatusOutOfStock})
	s.Create(CreateInput{SiteID: "SITE-001", Name: "E", SKU: "E-1", Stock: 2, Status: models.ProductStatusDraft})

	sum := listview.Summarize(s.All(), ListConfig().Counters, time.Now())

	if sum["low_stock"] != 2 {
		t.Errorf("low_stock = %d, want 2 (active with 0 < stock <= %d)", sum["low_stock"], models.LowStockThreshold)
	}
	if sum["active"] != 3 || sum["draft"] != 1 || sum["out_of_stock"] != 1 {
		t.Errorf("status counters = %d/%d/%d", sum["active"], sum["draft"], sum["out_of_stock"])
	}
}

func TestFilterBySiteAndSearch(t *testing.T) {
	s := New()
	s.Records().Reset(Seed())

	ctrl := listview.NewController(s.Records(), ListConfig())
	ctrl.SetFilter("site_id", "SITE-001")

	for _, p := range ctrl.Filtered() {
		if p.SiteID != "SITE-001" {
			t.Errorf("record %s has SiteID %q", p.ID, p.SiteID)
		}
	}

	ctrl.ClearFilters()
	ctrl.SetFilter("search", "zzz-no-such-product")
	if got := len(ctrl.Filtered()); got != 0 {
		t.Errorf("got %d records for nonsense search", got)
	}
}
