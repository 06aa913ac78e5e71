package controllers

import (
	"errors"
	"net/http"

	"github.com/lintang-b-s/zonemap/pkg"

	"go.uber.org/zap"
)

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type baseAPI struct {
	log *zap.Logger
}

func (api *baseAPI) writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	return writeJSON(api.log, w, status, data, headers)
}

func (api *baseAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var resp errorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	if err := api.writeJSON(w, status, resp, nil); err != nil {
		api.log.Error("failed to write error response", zap.String("path", r.URL.Path), zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *baseAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, "bad_request", errorMessage(err))
}

func (api *baseAPI) NotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusNotFound, "not_found", errorMessage(err))
}

func (api *baseAPI) ConflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusConflict, "conflict", errorMessage(err))
}

func (api *baseAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.log.Error("request failed", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
	api.errorResponse(w, r, http.StatusInternalServerError, "internal_server_error", pkg.MessageInternalServerError)
}

// serviceErrorResponse maps the code attached by pkg.WrapErrorf to a status.
func (api *baseAPI) serviceErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch pkg.ErrorCode(err) {
	case pkg.ErrNotFound:
		api.NotFoundResponse(w, r, err)
	case pkg.ErrBadParamInput:
		api.BadRequestResponse(w, r, err)
	case pkg.ErrConflict:
		api.ConflictResponse(w, r, err)
	default:
		api.ServerErrorResponse(w, r, err)
	}
}

func errorMessage(err error) string {
	var perr *pkg.Error
	if errors.As(err, &perr) {
		return perr.Message()
	}
	return err.Error()
}
