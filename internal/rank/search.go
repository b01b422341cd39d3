package rank

import (
	"strings"

	"github.com/gyeh/clinicmap/internal/model"
)

// Search returns the first clinic, in display order, whose name or address
// contains the keyword. A blank keyword never matches.
func Search(clinics []model.Clinic, keyword string) (model.Clinic, bool) {
	kw := strings.TrimSpace(keyword)
	if kw == "" {
		return model.Clinic{}, false
	}
	for _, c := range clinics {
		if strings.Contains(c.OrgName, kw) || strings.Contains(c.Address, kw) {
			return c, true
		}
	}
	return model.Clinic{}, false
}
