package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gyeh/clinicmap/internal/model"
	"github.com/gyeh/clinicmap/internal/normalize"
)

// jsonRow accepts loosely typed values; published files mix numbers and
// numeric strings in the same column.
type jsonRow struct {
	County           any `json:"county"`
	OrgName          any `json:"org_name"`
	OrgURL           any `json:"org_url"`
	Phone            any `json:"phone"`
	Address          any `json:"address"`
	MapURL           any `json:"map_url"`
	Lat              any `json:"lat"`
	Lng              any `json:"lng"`
	PayDetail        any `json:"pay_detail"`
	ThisWeek         any `json:"this_week"`
	NextWeek         any `json:"next_week"`
	Next2Week        any `json:"next_2_week"`
	Next3Week        any `json:"next_3_week"`
	In4Weeks         any `json:"in_4_weeks"`
	EditDate         any `json:"edit_date"`
	Teleconsultation any `json:"teleconsultation"`
	HasQuota         any `json:"has_quota"`
}

// wrappedInput is the {county, total, rows} envelope.
type wrappedInput struct {
	County string    `json:"county"`
	Total  int       `json:"total"`
	Rows   []jsonRow `json:"rows"`
}

// ReadJSON decodes a clinic dataset. Both a bare array of rows and the
// {"county", "total", "rows"} envelope are accepted; an envelope without
// rows yields an empty dataset.
func ReadJSON(r io.Reader) ([]model.RawClinicRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("decode json: empty input")
	}

	var rows []jsonRow
	switch trimmed[0] {
	case '[':
		if err := decode(trimmed, &rows); err != nil {
			return nil, fmt.Errorf("decode json array: %w", err)
		}
	case '{':
		var w wrappedInput
		if err := decode(trimmed, &w); err != nil {
			return nil, fmt.Errorf("decode json envelope: %w", err)
		}
		rows = w.Rows
	default:
		return nil, fmt.Errorf("decode json: expected array or object, got %q", trimmed[0])
	}

	out := make([]model.RawClinicRow, len(rows))
	for i, jr := range rows {
		out[i] = jr.toRaw()
	}
	return out, nil
}

func decode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

func (j jsonRow) toRaw() model.RawClinicRow {
	return model.RawClinicRow{
		County:           deref(normalize.Text(j.County)),
		OrgName:          deref(normalize.Text(j.OrgName)),
		OrgURL:           normalize.Text(j.OrgURL),
		Phone:            normalize.Text(j.Phone),
		Address:          deref(normalize.Text(j.Address)),
		MapURL:           normalize.Text(j.MapURL),
		Lat:              normalize.Float(j.Lat),
		Lng:              normalize.Float(j.Lng),
		PayDetail:        normalize.Text(j.PayDetail),
		ThisWeek:         normalize.Count(j.ThisWeek),
		NextWeek:         normalize.Count(j.NextWeek),
		Next2Week:        normalize.Count(j.Next2Week),
		Next3Week:        normalize.Count(j.Next3Week),
		In4Weeks:         normalize.Count(j.In4Weeks),
		EditDate:         normalize.Text(j.EditDate),
		Teleconsultation: normalize.Bool(j.Teleconsultation),
		HasQuota:         normalize.Bool(j.HasQuota),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
