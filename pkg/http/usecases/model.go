package usecases

import (
	"math"

	"github.com/lintang-b-s/zonemap/pkg/datastructure"
	"github.com/lintang-b-s/zonemap/pkg/geo"
)

// ParcelView model info
//
//	@Description	parcel with its map position. latitude/longitude are null when the parcel has neither vertices nor a Lambert point.
type ParcelView struct {
	datastructure.Parcel
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// ZoneView model info
//
//	@Description	zone with its map position and parcels.
type ZoneView struct {
	datastructure.Zone
	Latitude        *float64     `json:"latitude"`
	Longitude       *float64     `json:"longitude"`
	Parcels         []ParcelView `json:"parcels"`
	AvailableParcel int          `json:"availableParcels"`
}

// ZoneInput carries a create or a partial update. nil fields are left untouched,
// a non-nil Vertices replaces the whole ring.
type ZoneInput struct {
	Name          *string
	Status        *datastructure.Status
	ZoneTypeID    *string
	RegionID      *string
	LambertX      *float64
	LambertY      *float64
	TotalArea     *float64
	Vertices      *[]geo.Vertex
	ActivityIcons *[]string
	AmenityIDs    *[]string
}

// ZoneFilter narrows ZoneService.List. empty fields match every zone, area bounds are
// inclusive and exclude zones without a total area.
type ZoneFilter struct {
	RegionID   string
	ZoneTypeID string
	Status     datastructure.Status
	MinArea    *float64
	MaxArea    *float64
}

func (f ZoneFilter) Match(zone datastructure.Zone) bool {
	if f.RegionID != "" && zone.RegionID != f.RegionID {
		return false
	}
	if f.ZoneTypeID != "" && zone.ZoneTypeID != f.ZoneTypeID {
		return false
	}
	if f.Status != "" && zone.Status != f.Status {
		return false
	}
	if f.MinArea == nil && f.MaxArea == nil {
		return true
	}
	if zone.TotalArea == nil {
		return false
	}
	if f.MinArea != nil && *zone.TotalArea < *f.MinArea {
		return false
	}
	if f.MaxArea != nil && *zone.TotalArea > *f.MaxArea {
		return false
	}
	return true
}

type ParcelInput struct {
	Reference  *string
	ZoneID     *string
	Status     *datastructure.Status
	IsFree     *bool
	IsShowroom *bool
	Area       *float64
	LambertX   *float64
	LambertY   *float64
	Vertices   *[]geo.Vertex
}

// LocateResult model info
//
//	@Description	zone found for a Lambert point. inside is false when no boundary contains the point and the nearest zone is returned instead.
type LocateResult struct {
	Zone       ZoneView   `json:"zone"`
	Inside     bool       `json:"inside"`
	DistanceKM float64    `json:"distance_km"`
	Point      geo.LatLon `json:"point"`
}

// mapPosition resolves b and drops positions the projector could not compute.
func mapPosition(b geo.BoundarySource, p geo.Projection) (geo.LatLon, bool) {
	ll, ok := geo.Resolve(b, p)
	if !ok || math.IsNaN(ll.Lat) || math.IsNaN(ll.Lon) {
		return geo.LatLon{}, false
	}
	return ll, true
}

func latLonPtrs(b geo.BoundarySource, p geo.Projection) (*float64, *float64) {
	ll, ok := mapPosition(b, p)
	if !ok {
		return nil, nil
	}
	return &ll.Lat, &ll.Lon
}

func newParcelView(parcel datastructure.Parcel, p geo.Projection) ParcelView {
	lat, lon := latLonPtrs(parcel.Boundary(), p)
	return ParcelView{
		Parcel:    parcel,
		Latitude:  lat,
		Longitude: lon,
	}
}

func newZoneView(zone datastructure.Zone, parcels []datastructure.Parcel, p geo.Projection) ZoneView {
	lat, lon := latLonPtrs(zone.Boundary(), p)
	view := ZoneView{
		Zone:      zone,
		Latitude:  lat,
		Longitude: lon,
		Parcels:   make([]ParcelView, 0, len(parcels)),
	}
	for _, parcel := range parcels {
		view.Parcels = append(view.Parcels, newParcelView(parcel, p))
		if parcel.Available() {
			view.AvailableParcel++
		}
	}
	return view
}
