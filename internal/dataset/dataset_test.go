package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyeh/clinicmap/internal/model"
)

const wrappedFixture = `{
  "county": "臺北市",
  "total": 2,
  "rows": [
    {"county": "臺北市", "org_name": "心晴診所", "address": "臺北市中正區1號",
     "lat": 25.04, "lng": "121.52", "this_week": "3", "next_week": 0,
     "next_2_week": null, "next_3_week": 1, "in_4_weeks": 2,
     "teleconsultation": "true", "has_quota": true, "phone": 223456, "org_url": null},
    {"county": "臺北市", "org_name": "未定位診所", "address": "臺北市大安區2號",
     "lat": null, "has_quota": false}
  ]
}`

func TestReadJSON_Wrapped(t *testing.T) {
	rows, err := ReadJSON(strings.NewReader(wrappedFixture))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	r := rows[0]
	assert.Equal(t, "心晴診所", r.OrgName)
	require.NotNil(t, r.Lat)
	require.NotNil(t, r.Lng)
	assert.Equal(t, 25.04, *r.Lat)
	assert.Equal(t, 121.52, *r.Lng)
	require.NotNil(t, r.ThisWeek)
	assert.Equal(t, int64(3), *r.ThisWeek)
	assert.Nil(t, r.Next2Week)
	require.NotNil(t, r.Teleconsultation)
	assert.True(t, *r.Teleconsultation)
	require.NotNil(t, r.Phone)
	assert.Equal(t, "223456", *r.Phone)
	assert.Nil(t, r.OrgURL)

	assert.Nil(t, rows[1].Lat)
	assert.Nil(t, rows[1].Lng)
}

func TestReadJSON_Array(t *testing.T) {
	rows, err := ReadJSON(strings.NewReader(`[{"org_name":"A","address":"B","lat":25,"lng":121}]`))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0].OrgName)
}

func TestReadJSON_EnvelopeWithoutRows(t *testing.T) {
	rows, err := ReadJSON(strings.NewReader(`{"county":"臺北市","total":0}`))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadJSON_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "42", "[{", `{"rows": 5}`} {
		_, err := ReadJSON(strings.NewReader(in))
		assert.Error(t, err, "input %q", in)
	}
}

func TestOpen_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clinic.json")
	require.NoError(t, os.WriteFile(path, []byte(wrappedFixture), 0644))

	rows, err := Open(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(context.Background(), "/nonexistent/clinic.json")
	assert.Error(t, err)
}

func TestOpen_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Open(ctx, "whatever.json")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParquet_WriteThenOpen(t *testing.T) {
	src, err := ReadJSON(strings.NewReader(wrappedFixture))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "clinic.parquet")
	require.NoError(t, WriteParquet(path, src))

	rows, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, src[0].OrgName, rows[0].OrgName)
	require.NotNil(t, rows[0].Lat)
	assert.Equal(t, *src[0].Lat, *rows[0].Lat)
	assert.Nil(t, rows[1].Lat, "null latitude must survive the round trip")
}

func TestParquet_RoundTripAcrossBatches(t *testing.T) {
	const n = readBatchSize*2 + 88
	src := make([]model.RawClinicRow, n)
	for i := range src {
		r := model.RawClinicRow{
			County:  "臺北市",
			OrgName: fmt.Sprintf("clinic-%d", i),
			Address: fmt.Sprintf("%d 忠孝東路", i),
		}
		if i%7 != 0 {
			lat, lng := 22+float64(i)/1000, 120+float64(i)/1000
			phone := fmt.Sprintf("02-%04d", i)
			slots := int64(i)
			quota := i%2 == 0
			r.Lat, r.Lng, r.Phone, r.ThisWeek, r.HasQuota = &lat, &lng, &phone, &slots, &quota
		}
		src[i] = r
	}

	path := filepath.Join(t.TempDir(), "large.parquet")
	require.NoError(t, WriteParquet(path, src))

	rows, err := ReadParquet(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, rows, n)
	for i := range src {
		assert.Equal(t, src[i], rows[i], "row %d", i)
	}
}

func TestValidateSchema_MissingCoordinates(t *testing.T) {
	type noCoords struct {
		County  string `parquet:"county"`
		OrgName string `parquet:"org_name"`
		Address string `parquet:"address"`
	}
	path := filepath.Join(t.TempDir(), "bad.parquet")
	require.NoError(t, parquet.WriteFile(path, []noCoords{{County: "a", OrgName: "b", Address: "c"}}))

	_, err := ReadParquet(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lat")
	assert.Contains(t, err.Error(), "lng")
}

func TestValidateSchema_Complete(t *testing.T) {
	assert.NoError(t, ValidateSchema(parquet.SchemaOf(model.RawClinicRow{})))
}

func TestFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clinic.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0644))

	got, err := FileHash(path)
	require.NoError(t, err)
	// sha256("[]")
	assert.Equal(t, "4f53cda18c2baa0c0354bb5f9a3ecbe5ed12ab4d8e11ba873c2f11161202b945", got)

	_, err = FileHash("/nonexistent/clinic.json")
	assert.Error(t, err)
}
