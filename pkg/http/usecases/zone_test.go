package usecases

import (
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/zonemap/pkg"
	"github.com/lintang-b-s/zonemap/pkg/datastructure"
	"github.com/lintang-b-s/zonemap/pkg/geo"
	"github.com/lintang-b-s/zonemap/pkg/kvdb"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// scaleProjection maps Lambert metres to degrees by dividing by 1000, lat from y.
type scaleProjection struct{}

func (scaleProjection) Project(x, y float64) (float64, float64) {
	return y / 1000, x / 1000
}

func openTestRepo(t *testing.T) *kvdb.KVDB {
	t.Helper()
	db, err := bolt.Open(filepath.Join(t.TempDir(), "zones.db"), 0600, nil)
	require.NoError(t, err)
	kv, err := kvdb.NewKVDB(db)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = kv.Close()
	})
	return kv
}

func newTestServices(t *testing.T) (*ZoneService, *ParcelService) {
	repo := openTestRepo(t)
	log := zap.NewNop()
	return NewZoneService(log, repo, scaleProjection{}, 0), NewParcelService(log, repo, scaleProjection{})
}

func str(s string) *string { return &s }

func num(f float64) *float64 { return &f }

func status(s datastructure.Status) *datastructure.Status { return &s }

func squareRing(x0, y0, side float64) *[]geo.Vertex {
	ring := []geo.Vertex{
		geo.NewVertex(0, x0, y0),
		geo.NewVertex(1, x0+side, y0),
		geo.NewVertex(2, x0+side, y0+side),
		geo.NewVertex(3, x0, y0+side),
	}
	return &ring
}

func TestZoneCreateDefaults(t *testing.T) {
	zones, _ := newTestServices(t)

	view, err := zones.Create(ZoneInput{Name: str("  Tanger Med  ")})
	require.NoError(t, err)
	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "Tanger Med", view.Name)
	assert.Equal(t, datastructure.AVAILABLE, view.Status)
	assert.Nil(t, view.Latitude)
	assert.Nil(t, view.Longitude)
	assert.Empty(t, view.Parcels)
}

func TestZoneCreateRejectsBadInput(t *testing.T) {
	zones, _ := newTestServices(t)

	tests := []struct {
		name string
		in   ZoneInput
	}{
		{"no name", ZoneInput{}},
		{"blank name", ZoneInput{Name: str("  ")}},
		{"unknown status", ZoneInput{Name: str("a"), Status: status("CLOSED")}},
		{"negative seq", ZoneInput{Name: str("a"), Vertices: &[]geo.Vertex{geo.NewVertex(-1, 0, 0)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := zones.Create(tt.in)
			require.Error(t, err)
			assert.Equal(t, pkg.ErrBadParamInput, pkg.ErrorCode(err))
		})
	}
}

func TestZonePositionFromVertices(t *testing.T) {
	zones, _ := newTestServices(t)

	// vertices win over the legacy point
	view, err := zones.Create(ZoneInput{
		Name:     str("Ouled Saleh"),
		LambertX: num(1000),
		LambertY: num(1000),
		Vertices: squareRing(0, 0, 10000),
	})
	require.NoError(t, err)
	require.NotNil(t, view.Latitude)
	assert.InDelta(t, 5, *view.Latitude, 1e-9)
	assert.InDelta(t, 5, *view.Longitude, 1e-9)

	got, err := zones.Get(view.ID)
	require.NoError(t, err)
	assert.InDelta(t, 5, *got.Latitude, 1e-9)
}

func TestZoneUpdatePartial(t *testing.T) {
	zones, _ := newTestServices(t)

	view, err := zones.Create(ZoneInput{
		Name:          str("Agadir Haliopolis"),
		ActivityIcons: &[]string{"fish"},
		LambertX:      num(2000),
		LambertY:      num(4000),
	})
	require.NoError(t, err)

	updated, err := zones.Update(view.ID, ZoneInput{Status: status(datastructure.OCCUPIED)})
	require.NoError(t, err)
	assert.Equal(t, "Agadir Haliopolis", updated.Name)
	assert.Equal(t, datastructure.OCCUPIED, updated.Status)
	assert.Equal(t, []string{"fish"}, updated.ActivityIcons)
	assert.InDelta(t, 4, *updated.Latitude, 1e-9)

	_, err = zones.Update(view.ID, ZoneInput{Name: str("")})
	assert.Equal(t, pkg.ErrBadParamInput, pkg.ErrorCode(err))

	_, err = zones.Update("missing", ZoneInput{Name: str("x")})
	assert.Equal(t, pkg.ErrNotFound, pkg.ErrorCode(err))
}

func TestZoneAvailableParcels(t *testing.T) {
	zones, parcels := newTestServices(t)

	zone, err := zones.Create(ZoneInput{Name: str("Kenitra"), LambertX: num(1000), LambertY: num(2000)})
	require.NoError(t, err)

	_, err = parcels.Create(ParcelInput{Reference: str("K-1"), ZoneID: &zone.ID})
	require.NoError(t, err)
	_, err = parcels.Create(ParcelInput{Reference: str("K-2"), ZoneID: &zone.ID, Status: status(datastructure.RESERVED)})
	require.NoError(t, err)
	notFree := false
	_, err = parcels.Create(ParcelInput{Reference: str("K-3"), ZoneID: &zone.ID, IsFree: &notFree})
	require.NoError(t, err)

	got, err := zones.Get(zone.ID)
	require.NoError(t, err)
	assert.Len(t, got.Parcels, 3)
	assert.Equal(t, 1, got.AvailableParcel)

	list, err := zones.List(ZoneFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].AvailableParcel)
}

func TestZoneDeleteCascades(t *testing.T) {
	zones, parcels := newTestServices(t)

	zone, err := zones.Create(ZoneInput{Name: str("Nador West Med")})
	require.NoError(t, err)
	parcel, err := parcels.Create(ParcelInput{Reference: str("N-1"), ZoneID: &zone.ID})
	require.NoError(t, err)

	require.NoError(t, zones.Delete(zone.ID))

	_, err = zones.Get(zone.ID)
	assert.Equal(t, pkg.ErrNotFound, pkg.ErrorCode(err))
	_, err = parcels.Get(parcel.ID)
	assert.Equal(t, pkg.ErrNotFound, pkg.ErrorCode(err))

	err = zones.Delete(zone.ID)
	assert.Equal(t, pkg.ErrNotFound, pkg.ErrorCode(err))
}

func TestZoneMapFeatures(t *testing.T) {
	zones, _ := newTestServices(t)

	_, err := zones.Create(ZoneInput{Name: str("north"), LambertX: num(10000), LambertY: num(35000), ActivityIcons: &[]string{"", "port"}})
	require.NoError(t, err)
	_, err = zones.Create(ZoneInput{Name: str("south"), Vertices: squareRing(8000, 30000, 2000)})
	require.NoError(t, err)
	_, err = zones.Create(ZoneInput{Name: str("nowhere")})
	require.NoError(t, err)

	fc, err := zones.MapFeatures(nil)
	require.NoError(t, err)
	assert.Len(t, fc.Features, 2)

	for _, f := range fc.Features {
		assert.IsType(t, orb.Point{}, f.Geometry)
		if f.Properties["name"] == "north" {
			assert.Equal(t, []string{"port"}, f.Properties["activityIcons"])
			assert.Equal(t, orb.Point{10, 35}, f.Geometry)
		}
	}

	bbox := geo.NewBoundingBox([]float64{30, 32}, []float64{8, 10})
	fc, err = zones.MapFeatures(&bbox)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "south", fc.Features[0].Properties["name"])
	pt := fc.Features[0].Geometry.(orb.Point)
	assert.InDelta(t, 9, pt.Lon(), 1e-9)
	assert.InDelta(t, 31, pt.Lat(), 1e-9)
}

func TestZoneOutline(t *testing.T) {
	zones, parcels := newTestServices(t)

	zone, err := zones.Create(ZoneInput{Name: str("Tit Mellil"), Vertices: squareRing(0, 0, 10000)})
	require.NoError(t, err)
	_, err = parcels.Create(ParcelInput{Reference: str("T-1"), ZoneID: &zone.ID, Vertices: squareRing(1000, 1000, 500)})
	require.NoError(t, err)
	_, err = parcels.Create(ParcelInput{Reference: str("T-2"), ZoneID: &zone.ID, LambertX: num(3000), LambertY: num(3000)})
	require.NoError(t, err)
	_, err = parcels.Create(ParcelInput{Reference: str("T-3"), ZoneID: &zone.ID})
	require.NoError(t, err)

	fc, err := zones.Outline(zone.ID)
	require.NoError(t, err)
	require.Len(t, fc.Features, 4)

	assert.Equal(t, "zone", fc.Features[0].Properties["kind"])
	assert.IsType(t, orb.Polygon{}, fc.Features[0].Geometry)

	byRef := map[string]*orb.Polygon{}
	footprint := map[string]bool{}
	for _, f := range fc.Features[1:] {
		poly := f.Geometry.(orb.Polygon)
		ref := f.Properties["reference"].(string)
		byRef[ref] = &poly
		footprint[ref] = f.Properties["footprint"].(bool)
	}
	assert.False(t, footprint["T-1"])
	assert.True(t, footprint["T-2"])
	assert.True(t, footprint["T-3"])

	// footprint around the parcel point, half size 100m
	t2 := (*byRef["T-2"])[0]
	assert.Len(t, t2, 5)
	assert.InDelta(t, 2.9, t2[0][0], 1e-9)
	assert.InDelta(t, 2.9, t2[0][1], 1e-9)

	// no point of its own, falls back to the zone centroid (5000, 5000)
	t3 := (*byRef["T-3"])[0]
	assert.InDelta(t, 4.9, t3[0][0], 1e-9)
	assert.InDelta(t, 5.1, t3[2][1], 1e-9)

	_, err = zones.Outline("missing")
	assert.Equal(t, pkg.ErrNotFound, pkg.ErrorCode(err))
}

func TestZoneLocate(t *testing.T) {
	zones, _ := newTestServices(t)

	west, err := zones.Create(ZoneInput{Name: str("west"), Vertices: squareRing(0, 0, 10000)})
	require.NoError(t, err)
	east, err := zones.Create(ZoneInput{Name: str("east"), LambertX: num(50000), LambertY: num(5000)})
	require.NoError(t, err)

	res, err := zones.Locate(2000, 3000)
	require.NoError(t, err)
	assert.True(t, res.Inside)
	assert.Equal(t, west.ID, res.Zone.ID)
	assert.InDelta(t, 3, res.Point.Lat, 1e-9)

	res, err = zones.Locate(45000, 5000)
	require.NoError(t, err)
	assert.False(t, res.Inside)
	assert.Equal(t, east.ID, res.Zone.ID)
	assert.Greater(t, res.DistanceKM, 0.0)
}

func TestZoneLocateEmpty(t *testing.T) {
	zones, _ := newTestServices(t)

	_, err := zones.Create(ZoneInput{Name: str("no geometry")})
	require.NoError(t, err)

	_, err = zones.Locate(1, 1)
	assert.Equal(t, pkg.ErrNotFound, pkg.ErrorCode(err))
}

func TestZoneListFilter(t *testing.T) {
	zones, _ := newTestServices(t)

	for _, in := range []ZoneInput{
		{Name: str("tanger"), RegionID: str("north"), ZoneTypeID: str("free"), TotalArea: num(500000)},
		{Name: str("kenitra"), RegionID: str("north"), ZoneTypeID: str("industrial"), TotalArea: num(120000), Status: status(datastructure.RESERVED)},
		{Name: str("agadir"), RegionID: str("south"), ZoneTypeID: str("industrial"), TotalArea: num(80000)},
		{Name: str("unsized"), RegionID: str("south"), ZoneTypeID: str("industrial")},
	} {
		_, err := zones.Create(in)
		require.NoError(t, err)
	}

	tests := []struct {
		name   string
		filter ZoneFilter
		want   []string
	}{
		{"no filter", ZoneFilter{}, []string{"agadir", "kenitra", "tanger", "unsized"}},
		{"region", ZoneFilter{RegionID: "north"}, []string{"kenitra", "tanger"}},
		{"zone type", ZoneFilter{ZoneTypeID: "industrial"}, []string{"agadir", "kenitra", "unsized"}},
		{"status", ZoneFilter{Status: datastructure.RESERVED}, []string{"kenitra"}},
		{"min area inclusive", ZoneFilter{MinArea: num(120000)}, []string{"kenitra", "tanger"}},
		{"max area", ZoneFilter{MaxArea: num(100000)}, []string{"agadir"}},
		{"area range and region", ZoneFilter{RegionID: "south", MinArea: num(1), MaxArea: num(1e6)}, []string{"agadir"}},
		{"nothing matches", ZoneFilter{RegionID: "east"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views, err := zones.List(tt.filter)
			require.NoError(t, err)
			names := make([]string, 0, len(views))
			for _, v := range views {
				names = append(names, v.Name)
			}
			assert.ElementsMatch(t, tt.want, names)
		})
	}

	_, err := zones.List(ZoneFilter{Status: "CLOSED"})
	assert.Equal(t, pkg.ErrBadParamInput, pkg.ErrorCode(err))
	_, err = zones.List(ZoneFilter{MinArea: num(10), MaxArea: num(1)})
	assert.Equal(t, pkg.ErrBadParamInput, pkg.ErrorCode(err))
}
