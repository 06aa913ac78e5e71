package controllers

import (
	"net/http"

	"github.com/lintang-b-s/zonemap/pkg/datastructure"
	"github.com/lintang-b-s/zonemap/pkg/geo"
	helper "github.com/lintang-b-s/zonemap/pkg/http/http-router/router-helper"
	"github.com/lintang-b-s/zonemap/pkg/http/usecases"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

type parcelAPI struct {
	baseAPI
	parcelService ParcelService
}

func NewParcelAPI(parcelService ParcelService, log *zap.Logger) *parcelAPI {
	return &parcelAPI{
		baseAPI:       baseAPI{log: log},
		parcelService: parcelService,
	}
}

func (api *parcelAPI) Routes(group *helper.RouteGroup) {
	group.GET("/parcels", api.listParcels)
	group.POST("/parcels", api.createParcel)
	group.GET("/parcels/:id", api.getParcel)
	group.PUT("/parcels/:id", api.updateParcel)
	group.DELETE("/parcels/:id", api.deleteParcel)
}

// parcelRequest model info
//
//	@Description	request body to create or update a parcel.
type parcelRequest struct {
	Reference  *string               `json:"reference" validate:"omitempty,max=100"` // required on create
	ZoneID     *string               `json:"zoneId"`                                 // required on create, must reference an existing zone
	Status     *datastructure.Status `json:"status" validate:"omitempty,oneof=AVAILABLE RESERVED OCCUPIED SHOWROOM"`
	IsFree     *bool                 `json:"isFree"`
	IsShowroom *bool                 `json:"isShowroom"`
	Area       *float64              `json:"area" validate:"omitempty,gte=0"`
	LambertX   *float64              `json:"lambertX"`
	LambertY   *float64              `json:"lambertY"`
	Vertices   *[]geo.Vertex         `json:"vertices" validate:"omitempty,dive"`
}

func (req parcelRequest) input() usecases.ParcelInput {
	return usecases.ParcelInput{
		Reference:  req.Reference,
		ZoneID:     req.ZoneID,
		Status:     req.Status,
		IsFree:     req.IsFree,
		IsShowroom: req.IsShowroom,
		Area:       req.Area,
		LambertX:   req.LambertX,
		LambertY:   req.LambertY,
		Vertices:   req.Vertices,
	}
}

// parcelResponse model info
//
//	@Description	response body with one parcel.
type parcelResponse struct {
	Data usecases.ParcelView `json:"data"`
}

type parcelsResponse struct {
	Data []usecases.ParcelView `json:"data"`
}

// listParcels godoc
// @Summary		list parcels, optionally only those of one zone.
// @Tags			parcels
// @ID list-parcels
// @Param			zone_id	query	string	false	"zone id"
// @Produce		application/json
// @Router			/api/parcels [get]
// @Success		200	{object}	parcelsResponse
// @Failure		500	{object}	errorResponse
func (api *parcelAPI) listParcels(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	parcels, err := api.parcelService.List(r.URL.Query().Get("zone_id"))
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": parcels}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// getParcel godoc
// @Summary		get one parcel.
// @Tags			parcels
// @ID get-parcel
// @Param			id	path	string	true	"parcel id"
// @Produce		application/json
// @Router			/api/parcels/{id} [get]
// @Success		200	{object}	parcelResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *parcelAPI) getParcel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	parcel, err := api.parcelService.Get(ps.ByName("id"))
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": parcel}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// createParcel godoc
// @Summary		create a parcel inside an existing zone.
// @Tags			parcels
// @ID create-parcel
// @Param			body	body	parcelRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/parcels [post]
// @Success		201	{object}	parcelResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *parcelAPI) createParcel(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request parcelRequest
	if err := readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	parcel, err := api.parcelService.Create(request.input())
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", "/api/parcels/"+parcel.ID)
	if err := api.writeJSON(w, http.StatusCreated, envelope{"data": parcel}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// updateParcel godoc
// @Summary		partial update of a parcel. moving it to another zone is allowed.
// @Tags			parcels
// @ID update-parcel
// @Param			id		path	string			true	"parcel id"
// @Param			body	body	parcelRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/parcels/{id} [put]
// @Success		200	{object}	parcelResponse
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *parcelAPI) updateParcel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var request parcelRequest
	if err := readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	parcel, err := api.parcelService.Update(ps.ByName("id"), request.input())
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": parcel}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// deleteParcel godoc
// @Summary		delete a parcel.
// @Tags			parcels
// @ID delete-parcel
// @Param			id	path	string	true	"parcel id"
// @Router			/api/parcels/{id} [delete]
// @Success		204
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *parcelAPI) deleteParcel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := api.parcelService.Delete(ps.ByName("id")); err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
