package importer

import (
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/zonemap/pkg/datastructure"
	"github.com/lintang-b-s/zonemap/pkg/geo"
	"github.com/lintang-b-s/zonemap/pkg/kvdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

func openTestDB(t *testing.T) *kvdb.KVDB {
	t.Helper()
	db, err := bolt.Open(filepath.Join(t.TempDir(), "zones.db"), 0600, nil)
	require.NoError(t, err)
	kv, err := kvdb.NewKVDB(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func writeWorkbook(t *testing.T, sheets map[string][][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for name, rows := range sheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	path := filepath.Join(t.TempDir(), "parcels.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func newTestImporter(t *testing.T, db *kvdb.KVDB) *Importer {
	im := New(zap.NewNop(), db, geo.DefaultProjector())
	im.SetOutput(io.Discard)
	im.SetBatchSize(2)
	im.SetWorkers(2)
	return im
}

var parcelHeader = []interface{}{"reference", "zone_id", "status", "is_free", "is_showroom", "area", "lambert_x", "lambert_y"}

func TestImport(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.PutZone(datastructure.NewZone("z1", "Ain Johra", datastructure.AVAILABLE)))

	path := writeWorkbook(t, map[string][][]interface{}{
		ParcelSheet: {
			parcelHeader,
			{"L-1", "z1", "available", "oui", "0", "1200,5", "259584,448", "366614,393"},
			{"L-2", "z1", "RESERVED", "", "", "", "", ""},
			{"L-3", "z1", "", "non", "1", "800", "", ""},
			{"", "z1", "", "", "", "", "", ""},
			{"L-4", "z1", "SOLD", "", "", "", "", ""},
			{"L-5", "z1", "", "", "", "abc", "", ""},
			{"L-6", "z1", "", "", "", "", "259584", ""},
			{"L-7", "unknown", "", "", "", "", "", ""},
		},
		VertexSheet: {
			{"reference", "seq", "lambert_x", "lambert_y"},
			{"L-3", "2", "1010", "1010"},
			{"L-3", "0", "1000", "1000"},
			{"L-3", "1", "1010", "1000"},
			{"L-3", "x", "1010", "1000"},
			{"", "3", "1000", "1010"},
		},
	})

	report, err := newTestImporter(t, db).Import(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 8, report.Rows)
	assert.Equal(t, 3, report.Imported)
	assert.Equal(t, 5, report.Skipped)
	assert.Equal(t, 1, report.UnknownZone)
	assert.Equal(t, 2, report.SkippedVertices)

	parcels, err := db.ListParcelsByZone("z1")
	require.NoError(t, err)
	require.Len(t, parcels, 3)

	byRef := map[string]datastructure.Parcel{}
	for _, p := range parcels {
		byRef[p.Reference] = p
	}

	l1 := byRef["L-1"]
	assert.Equal(t, datastructure.AVAILABLE, l1.Status)
	assert.True(t, l1.IsFree)
	assert.False(t, l1.IsShowroom)
	assert.InDelta(t, 1200.5, *l1.Area, 1e-9)
	assert.InDelta(t, 259584.448, *l1.LambertX, 1e-6)

	l2 := byRef["L-2"]
	assert.Equal(t, datastructure.RESERVED, l2.Status)
	assert.True(t, l2.IsFree)
	assert.Nil(t, l2.LambertX)
	assert.Equal(t, geo.NONE, l2.Boundary().Kind())

	l3 := byRef["L-3"]
	assert.False(t, l3.IsFree)
	assert.True(t, l3.IsShowroom)
	assert.Len(t, l3.Vertices, 3)
	assert.Equal(t, geo.VERTICES, l3.Boundary().Kind())
}

func TestImportSkipsNonFiniteNumbers(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.PutZone(datastructure.NewZone("z1", "Bouskoura", datastructure.AVAILABLE)))

	path := writeWorkbook(t, map[string][][]interface{}{
		ParcelSheet: {
			parcelHeader,
			{"F-1", "z1", "", "", "", "", "NaN", "Inf"},
			{"F-2", "z1", "", "", "", "inf", "", ""},
			{"F-3", "z1", "", "", "", "", "", ""},
		},
		VertexSheet: {
			{"reference", "seq", "lambert_x", "lambert_y"},
			{"F-3", "0", "inf", "1"},
			{"F-3", "1", "1", "-Inf"},
			{"F-3", "2", "NaN", "1"},
		},
	})

	report, err := newTestImporter(t, db).Import(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Rows)
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, 3, report.SkippedVertices)

	parcels, err := db.ListParcelsByZone("z1")
	require.NoError(t, err)
	require.Len(t, parcels, 1)
	assert.Equal(t, "F-3", parcels[0].Reference)
	assert.Empty(t, parcels[0].Vertices)

	_, err = json.Marshal(parcels[0])
	assert.NoError(t, err)
}

func TestImportIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.PutZone(datastructure.NewZone("z1", "Sidi Bernoussi", datastructure.AVAILABLE)))

	path := writeWorkbook(t, map[string][][]interface{}{
		ParcelSheet: {
			parcelHeader,
			{"B-1", "z1", "", "", "", "", "", ""},
			{"B-2", "z1", "", "", "", "", "", ""},
			{"B-3", "z1", "", "", "", "", "", ""},
		},
	})

	im := newTestImporter(t, db)
	_, err := im.Import(context.Background(), path)
	require.NoError(t, err)
	report, err := im.Import(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Imported)

	parcels, err := db.ListParcels()
	require.NoError(t, err)
	assert.Len(t, parcels, 3)
}

func TestImportMissingSheet(t *testing.T) {
	db := openTestDB(t)
	path := writeWorkbook(t, map[string][][]interface{}{
		"other": {{"a"}},
	})

	_, err := newTestImporter(t, db).Import(context.Background(), path)
	assert.Error(t, err)

	_, err = newTestImporter(t, db).Import(context.Background(), filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}

func TestImportCancelled(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.PutZone(datastructure.NewZone("z1", "Lissasfa", datastructure.AVAILABLE)))
	path := writeWorkbook(t, map[string][][]interface{}{
		ParcelSheet: {
			parcelHeader,
			{"C-1", "z1", "", "", "", "", "", ""},
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := newTestImporter(t, db).Import(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, report.Imported)
}

func TestParseBool(t *testing.T) {
	v, err := parseBool("", true)
	require.NoError(t, err)
	assert.True(t, v)

	v, err = parseBool("OUI", false)
	require.NoError(t, err)
	assert.True(t, v)

	_, err = parseBool("maybe", false)
	assert.Error(t, err)
}
