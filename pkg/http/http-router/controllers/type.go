package controllers

import (
	"github.com/lintang-b-s/zonemap/pkg/geo"
	"github.com/lintang-b-s/zonemap/pkg/http/usecases"

	"github.com/paulmach/orb/geojson"
)

type ZoneService interface {
	List(filter usecases.ZoneFilter) ([]usecases.ZoneView, error)
	Get(id string) (usecases.ZoneView, error)
	Create(in usecases.ZoneInput) (usecases.ZoneView, error)
	Update(id string, in usecases.ZoneInput) (usecases.ZoneView, error)
	Delete(id string) error
	MapFeatures(bbox *geo.BoundingBox) (*geojson.FeatureCollection, error)
	Outline(id string) (*geojson.FeatureCollection, error)
	Locate(x, y float64) (usecases.LocateResult, error)
}

type ParcelService interface {
	List(zoneID string) ([]usecases.ParcelView, error)
	Get(id string) (usecases.ParcelView, error)
	Create(in usecases.ParcelInput) (usecases.ParcelView, error)
	Update(id string, in usecases.ParcelInput) (usecases.ParcelView, error)
	Delete(id string) error
	MapFeatures(bbox *geo.BoundingBox) (*geojson.FeatureCollection, error)
}

type ProjectionService interface {
	Project(x, y float64) (geo.LatLon, error)
	Centroid(vertices []geo.Vertex) (geo.LatLon, error)
}
