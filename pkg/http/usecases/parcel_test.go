package usecases

import (
	"math"
	"testing"

	"github.com/lintang-b-s/zonemap/pkg"
	"github.com/lintang-b-s/zonemap/pkg/datastructure"
	"github.com/lintang-b-s/zonemap/pkg/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParcelCreateRequiresZone(t *testing.T) {
	zones, parcels := newTestServices(t)

	_, err := parcels.Create(ParcelInput{Reference: str("P-1")})
	assert.Equal(t, pkg.ErrBadParamInput, pkg.ErrorCode(err))

	_, err = parcels.Create(ParcelInput{Reference: str("P-1"), ZoneID: str("missing")})
	assert.Equal(t, pkg.ErrBadParamInput, pkg.ErrorCode(err))

	zone, err := zones.Create(ZoneInput{Name: str("Had Soualem")})
	require.NoError(t, err)

	_, err = parcels.Create(ParcelInput{ZoneID: &zone.ID})
	assert.Equal(t, pkg.ErrBadParamInput, pkg.ErrorCode(err))

	view, err := parcels.Create(ParcelInput{Reference: str("P-1"), ZoneID: &zone.ID, Area: num(2500)})
	require.NoError(t, err)
	assert.Equal(t, datastructure.AVAILABLE, view.Status)
	assert.True(t, view.IsFree)
	assert.Equal(t, 2500.0, *view.Area)
	assert.Nil(t, view.Latitude)
}

func TestParcelListByZone(t *testing.T) {
	zones, parcels := newTestServices(t)

	a, err := zones.Create(ZoneInput{Name: str("a")})
	require.NoError(t, err)
	b, err := zones.Create(ZoneInput{Name: str("b")})
	require.NoError(t, err)

	for _, ref := range []string{"A-1", "A-2"} {
		_, err := parcels.Create(ParcelInput{Reference: str(ref), ZoneID: &a.ID})
		require.NoError(t, err)
	}
	_, err = parcels.Create(ParcelInput{Reference: str("B-1"), ZoneID: &b.ID})
	require.NoError(t, err)

	all, err := parcels.List("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	inA, err := parcels.List(a.ID)
	require.NoError(t, err)
	assert.Len(t, inA, 2)

	none, err := parcels.List("unknown")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestParcelUpdate(t *testing.T) {
	zones, parcels := newTestServices(t)

	a, err := zones.Create(ZoneInput{Name: str("a")})
	require.NoError(t, err)
	b, err := zones.Create(ZoneInput{Name: str("b")})
	require.NoError(t, err)

	view, err := parcels.Create(ParcelInput{Reference: str("P-9"), ZoneID: &a.ID})
	require.NoError(t, err)

	showroom := true
	updated, err := parcels.Update(view.ID, ParcelInput{
		ZoneID:     &b.ID,
		IsShowroom: &showroom,
		Status:     status(datastructure.SHOWROOM),
		Vertices:   squareRing(0, 0, 100),
	})
	require.NoError(t, err)
	assert.Equal(t, "P-9", updated.Reference)
	assert.Equal(t, b.ID, updated.ZoneID)
	assert.True(t, updated.IsShowroom)
	assert.InDelta(t, 0.05, *updated.Latitude, 1e-9)

	inA, err := parcels.List(a.ID)
	require.NoError(t, err)
	assert.Empty(t, inA)

	_, err = parcels.Update(view.ID, ParcelInput{ZoneID: str("missing")})
	assert.Equal(t, pkg.ErrBadParamInput, pkg.ErrorCode(err))
	_, err = parcels.Update(view.ID, ParcelInput{Status: status("SOLD")})
	assert.Equal(t, pkg.ErrBadParamInput, pkg.ErrorCode(err))
	_, err = parcels.Update("missing", ParcelInput{})
	assert.Equal(t, pkg.ErrNotFound, pkg.ErrorCode(err))
}

func TestParcelDelete(t *testing.T) {
	zones, parcels := newTestServices(t)

	zone, err := zones.Create(ZoneInput{Name: str("z")})
	require.NoError(t, err)
	view, err := parcels.Create(ParcelInput{Reference: str("D-1"), ZoneID: &zone.ID})
	require.NoError(t, err)

	require.NoError(t, parcels.Delete(view.ID))
	assert.Equal(t, pkg.ErrNotFound, pkg.ErrorCode(parcels.Delete(view.ID)))

	got, err := zones.Get(zone.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Parcels)
}

func TestParcelMapFeatures(t *testing.T) {
	zones, parcels := newTestServices(t)

	zone, err := zones.Create(ZoneInput{Name: str("z")})
	require.NoError(t, err)
	_, err = parcels.Create(ParcelInput{Reference: str("M-1"), ZoneID: &zone.ID, LambertX: num(1000), LambertY: num(2000)})
	require.NoError(t, err)
	_, err = parcels.Create(ParcelInput{Reference: str("M-2"), ZoneID: &zone.ID, Vertices: squareRing(5000, 5000, 1000)})
	require.NoError(t, err)
	_, err = parcels.Create(ParcelInput{Reference: str("M-3"), ZoneID: &zone.ID})
	require.NoError(t, err)

	fc, err := parcels.MapFeatures(nil)
	require.NoError(t, err)
	assert.Len(t, fc.Features, 2)
	for _, f := range fc.Features {
		assert.Equal(t, zone.ID, f.Properties["zoneId"])
		assert.Equal(t, false, f.Properties["isShowroom"])
	}

	bbox := geo.NewBoundingBox([]float64{1, 3}, []float64{0, 2})
	fc, err = parcels.MapFeatures(&bbox)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "M-1", fc.Features[0].Properties["reference"])
}

func TestProjectionService(t *testing.T) {
	svc := NewProjectionService(zap.NewNop(), geo.DefaultProjector())

	ll, err := svc.Project(500000, 300000)
	require.NoError(t, err)
	assert.InDelta(t, 33.0, ll.Lat, 1e-6)
	assert.InDelta(t, -5.0, ll.Lon, 1e-6)

	ll, err = svc.Project(259584.448, 366614.393)
	require.NoError(t, err)
	assert.InDelta(t, 33.5731, ll.Lat, 1e-3)
	assert.InDelta(t, -7.5898, ll.Lon, 1e-3)
}

type nanProjection struct{}

func (nanProjection) Project(x, y float64) (float64, float64) {
	return math.NaN(), math.NaN()
}

func TestProjectionServiceNaN(t *testing.T) {
	svc := NewProjectionService(zap.NewNop(), nanProjection{})

	_, err := svc.Project(1, 2)
	assert.Equal(t, pkg.ErrBadParamInput, pkg.ErrorCode(err))
}

func TestProjectionServiceCentroid(t *testing.T) {
	svc := NewProjectionService(zap.NewNop(), scaleProjection{})

	ll, err := svc.Centroid(*squareRing(0, 0, 2000))
	require.NoError(t, err)
	assert.InDelta(t, 1, ll.Lat, 1e-9)
	assert.InDelta(t, 1, ll.Lon, 1e-9)

	_, err = svc.Centroid(nil)
	assert.Equal(t, pkg.ErrBadParamInput, pkg.ErrorCode(err))
}

func TestNaNPositionsAreLeftOut(t *testing.T) {
	repo := openTestRepo(t)
	zones := NewZoneService(zap.NewNop(), repo, nanProjection{}, 0)

	view, err := zones.Create(ZoneInput{Name: str("far away"), LambertX: num(1), LambertY: num(2)})
	require.NoError(t, err)
	assert.Nil(t, view.Latitude)

	fc, err := zones.MapFeatures(nil)
	require.NoError(t, err)
	assert.Empty(t, fc.Features)

	_, err = zones.Locate(1, 2)
	assert.Equal(t, pkg.ErrBadParamInput, pkg.ErrorCode(err))
}

func TestNonFiniteNumbersRejected(t *testing.T) {
	zones, parcels := newTestServices(t)

	_, err := zones.Create(ZoneInput{Name: str("a"), LambertX: num(math.NaN()), LambertY: num(1)})
	assert.Equal(t, pkg.ErrBadParamInput, pkg.ErrorCode(err))
	_, err = zones.Create(ZoneInput{Name: str("a"), TotalArea: num(math.Inf(1))})
	assert.Equal(t, pkg.ErrBadParamInput, pkg.ErrorCode(err))

	zone, err := zones.Create(ZoneInput{Name: str("a")})
	require.NoError(t, err)
	_, err = parcels.Create(ParcelInput{Reference: str("P"), ZoneID: &zone.ID, LambertX: num(1), LambertY: num(math.Inf(-1))})
	assert.Equal(t, pkg.ErrBadParamInput, pkg.ErrorCode(err))
	_, err = parcels.Create(ParcelInput{Reference: str("P"), ZoneID: &zone.ID, Area: num(math.NaN())})
	assert.Equal(t, pkg.ErrBadParamInput, pkg.ErrorCode(err))
}
