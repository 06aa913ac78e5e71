package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/lintang-b-s/zonemap/pkg/datastructure"
	"github.com/lintang-b-s/zonemap/pkg/geo"
	helper "github.com/lintang-b-s/zonemap/pkg/http/http-router/router-helper"
	"github.com/lintang-b-s/zonemap/pkg/http/usecases"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

type zoneAPI struct {
	baseAPI
	zoneService ZoneService
}

func NewZoneAPI(zoneService ZoneService, log *zap.Logger) *zoneAPI {
	return &zoneAPI{
		baseAPI:     baseAPI{log: log},
		zoneService: zoneService,
	}
}

func (api *zoneAPI) Routes(group *helper.RouteGroup) {
	group.GET("/zones", api.listZones)
	group.POST("/zones", api.createZone)
	group.GET("/zones/:id", api.getZone)
	group.PUT("/zones/:id", api.updateZone)
	group.DELETE("/zones/:id", api.deleteZone)
	group.GET("/zones/:id/outline", api.zoneOutline)
}

// zoneRequest model info
//
//	@Description	request body to create or update a zone. omitted fields are left untouched on update.
type zoneRequest struct {
	Name          *string               `json:"name" validate:"omitempty,max=200"`                                      // zone name, required on create
	Status        *datastructure.Status `json:"status" validate:"omitempty,oneof=AVAILABLE RESERVED OCCUPIED SHOWROOM"` // defaults to AVAILABLE
	ZoneTypeID    *string               `json:"zoneTypeId"`
	RegionID      *string               `json:"regionId"`
	LambertX      *float64              `json:"lambertX"`                             // legacy single point, easting in metres
	LambertY      *float64              `json:"lambertY"`                             // legacy single point, northing in metres
	TotalArea     *float64              `json:"totalArea" validate:"omitempty,gte=0"` // m²
	Vertices      *[]geo.Vertex         `json:"vertices" validate:"omitempty,dive"`   // boundary ring, replaces the stored ring
	ActivityIcons *[]string             `json:"activityIcons"`
	AmenityIDs    *[]string             `json:"amenityIds"`
}

func (req zoneRequest) input() usecases.ZoneInput {
	return usecases.ZoneInput{
		Name:          req.Name,
		Status:        req.Status,
		ZoneTypeID:    req.ZoneTypeID,
		RegionID:      req.RegionID,
		LambertX:      req.LambertX,
		LambertY:      req.LambertY,
		TotalArea:     req.TotalArea,
		Vertices:      req.Vertices,
		ActivityIcons: req.ActivityIcons,
		AmenityIDs:    req.AmenityIDs,
	}
}

// zoneResponse model info
//
//	@Description	response body with one zone.
type zoneResponse struct {
	Data usecases.ZoneView `json:"data"`
}

// zonesResponse model info
//
//	@Description	response body with every zone.
type zonesResponse struct {
	Data []usecases.ZoneView `json:"data"`
}

// listZones godoc
// @Summary		list zones with their map position, their parcels and the number of available parcels.
// @Tags			zones
// @ID list-zones
// @Param			regionId	query	string	false	"region id"
// @Param			zoneTypeId	query	string	false	"zone type id"
// @Param			status		query	string	false	"AVAILABLE, RESERVED, OCCUPIED or SHOWROOM"
// @Param			minArea		query	number	false	"minimum total area in m²"
// @Param			maxArea		query	number	false	"maximum total area in m²"
// @Produce		application/json
// @Router			/api/zones [get]
// @Success		200	{object}	zonesResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *zoneAPI) listZones(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter, err := parseZoneFilter(r)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	zones, err := api.zoneService.List(filter)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": zones}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// getZone godoc
// @Summary		get one zone.
// @Tags			zones
// @ID get-zone
// @Param			id	path	string	true	"zone id"
// @Produce		application/json
// @Router			/api/zones/{id} [get]
// @Success		200	{object}	zoneResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *zoneAPI) getZone(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	zone, err := api.zoneService.Get(ps.ByName("id"))
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": zone}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// createZone godoc
// @Summary		create a zone. the map position is derived from the vertices, else from the legacy Lambert point.
// @Tags			zones
// @ID create-zone
// @Param			body	body	zoneRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/zones [post]
// @Success		201	{object}	zoneResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *zoneAPI) createZone(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request zoneRequest
	if err := readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	zone, err := api.zoneService.Create(request.input())
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", "/api/zones/"+zone.ID)
	if err := api.writeJSON(w, http.StatusCreated, envelope{"data": zone}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// updateZone godoc
// @Summary		partial update of a zone.
// @Tags			zones
// @ID update-zone
// @Param			id		path	string		true	"zone id"
// @Param			body	body	zoneRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/zones/{id} [put]
// @Success		200	{object}	zoneResponse
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *zoneAPI) updateZone(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var request zoneRequest
	if err := readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	zone, err := api.zoneService.Update(ps.ByName("id"), request.input())
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": zone}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// deleteZone godoc
// @Summary		delete a zone and its parcels.
// @Tags			zones
// @ID delete-zone
// @Param			id	path	string	true	"zone id"
// @Router			/api/zones/{id} [delete]
// @Success		204
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *zoneAPI) deleteZone(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := api.zoneService.Delete(ps.ByName("id")); err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// zoneOutline godoc
// @Summary		GeoJSON outline of a zone and its parcels for the zone page map.
// @Tags			zones
// @ID zone-outline
// @Param			id	path	string	true	"zone id"
// @Produce		application/geo+json
// @Router			/api/zones/{id}/outline [get]
// @Success		200	{object}	geojson.FeatureCollection
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *zoneAPI) zoneOutline(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	fc, err := api.zoneService.Outline(ps.ByName("id"))
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": fc}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func parseZoneFilter(r *http.Request) (usecases.ZoneFilter, error) {
	q := r.URL.Query()
	filter := usecases.ZoneFilter{
		RegionID:   strings.TrimSpace(q.Get("regionId")),
		ZoneTypeID: strings.TrimSpace(q.Get("zoneTypeId")),
		Status:     datastructure.Status(strings.ToUpper(strings.TrimSpace(q.Get("status")))),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return usecases.ZoneFilter{}, errors.New("query parameter status must be one of AVAILABLE, RESERVED, OCCUPIED, SHOWROOM")
	}

	var err error
	if filter.MinArea, err = optionalQueryFloat(r, "minArea"); err != nil {
		return usecases.ZoneFilter{}, err
	}
	if filter.MaxArea, err = optionalQueryFloat(r, "maxArea"); err != nil {
		return usecases.ZoneFilter{}, err
	}
	return filter, nil
}
