package controllers

import (
	"fmt"
	"net/http"

	"github.com/lintang-b-s/zonemap/pkg/geo"
	helper "github.com/lintang-b-s/zonemap/pkg/http/http-router/router-helper"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

type mapAPI struct {
	baseAPI
	zoneService       ZoneService
	parcelService     ParcelService
	projectionService ProjectionService
}

func NewMapAPI(zoneService ZoneService, parcelService ParcelService, projectionService ProjectionService, log *zap.Logger) *mapAPI {
	return &mapAPI{
		baseAPI:           baseAPI{log: log},
		zoneService:       zoneService,
		parcelService:     parcelService,
		projectionService: projectionService,
	}
}

func (api *mapAPI) Routes(group *helper.RouteGroup) {
	group.GET("/map/zones", api.zoneFeatures)
	group.GET("/map/parcels", api.parcelFeatures)
	group.GET("/locate", api.locate)
	group.GET("/project", api.project)
	group.POST("/project/centroid", api.centroid)
}

func parseBBox(r *http.Request) (*geo.BoundingBox, error) {
	raw := r.URL.Query().Get("bbox")
	if raw == "" {
		return nil, nil
	}
	bbox, err := geo.ParseBoundingBox(raw)
	if err != nil {
		return nil, fmt.Errorf("bbox must be minLat,minLon,maxLat,maxLon: %w", err)
	}
	return &bbox, nil
}

// zoneFeatures godoc
// @Summary		GeoJSON points of every zone that has a map position. zones without vertices nor Lambert point are left out.
// @Tags			map
// @ID map-zones
// @Param			bbox	query	string	false	"minLat,minLon,maxLat,maxLon"
// @Produce		application/geo+json
// @Router			/api/map/zones [get]
// @Success		200	{object}	geojson.FeatureCollection
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) zoneFeatures(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bbox, err := parseBBox(r)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	fc, err := api.zoneService.MapFeatures(bbox)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": fc}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// parcelFeatures godoc
// @Summary		GeoJSON points of every parcel that has a map position.
// @Tags			map
// @ID map-parcels
// @Param			bbox	query	string	false	"minLat,minLon,maxLat,maxLon"
// @Produce		application/geo+json
// @Router			/api/map/parcels [get]
// @Success		200	{object}	geojson.FeatureCollection
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) parcelFeatures(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bbox, err := parseBBox(r)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	fc, err := api.parcelService.MapFeatures(bbox)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": fc}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// locate godoc
// @Summary		zone containing a Lambert point, or the nearest zone when none contains it.
// @Tags			map
// @ID locate
// @Param			x	query	number	true	"Lambert easting in metres"
// @Param			y	query	number	true	"Lambert northing in metres"
// @Produce		application/json
// @Router			/api/locate [get]
// @Success		200	{object}	usecases.LocateResult
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) locate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	x, y, err := lambertQuery(r)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	res, err := api.zoneService.Locate(x, y)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": res}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// project godoc
// @Summary		convert one Lambert Nord Maroc point to WGS84 latitude/longitude.
// @Tags			map
// @ID project
// @Param			x	query	number	true	"Lambert easting in metres"
// @Param			y	query	number	true	"Lambert northing in metres"
// @Produce		application/json
// @Router			/api/project [get]
// @Success		200	{object}	geo.LatLon
// @Failure		400	{object}	errorResponse
func (api *mapAPI) project(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	x, y, err := lambertQuery(r)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	ll, err := api.projectionService.Project(x, y)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": ll}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// centroidRequest model info
//
//	@Description	vertex list to reduce to one map position.
type centroidRequest struct {
	Vertices []geo.Vertex `json:"vertices" validate:"required,min=1"`
}

// centroid godoc
// @Summary		area weighted centroid of a vertex list, projected to WGS84.
// @Tags			map
// @ID project-centroid
// @Param			body	body	centroidRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/project/centroid [post]
// @Success		200	{object}	geo.LatLon
// @Failure		400	{object}	errorResponse
func (api *mapAPI) centroid(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request centroidRequest
	if err := readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	ll, err := api.projectionService.Centroid(request.Vertices)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": ll}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func lambertQuery(r *http.Request) (float64, float64, error) {
	x, err := queryFloat(r, "x")
	if err != nil {
		return 0, 0, err
	}
	y, err := queryFloat(r, "y")
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
