// Package upload implements the multipart upload relay: per-file streaming
// to blob storage, token gating, status tracking and completion push events.
package upload

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dtmtec/cloud-uploader/internal/response"
	"github.com/dtmtec/cloud-uploader/internal/status"
)

// Handler holds the HTTP handlers for the upload API.
type Handler struct {
	svc    *Service
	status *status.Store
}

// NewHandler creates a new upload Handler.
func NewHandler(svc *Service, st *status.Store) *Handler {
	return &Handler{svc: svc, status: st}
}

// Routes mounts the upload API on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/status", h.Status)
	r.Options("/upload", h.Preflight)
	r.Post("/upload", h.Upload)
}

// StatusResponse is the body of a successful status query.
type StatusResponse struct {
	FinishedUploading bool `json:"finished_uploading"`
}

// Status godoc
//
//	@Summary		Query upload completion state
//	@Description	Reports whether the named file is still uploading. Absence of a tracked entry means the upload finished (or never started).
//	@Tags			uploads
//	@Produce		json
//	@Param			file	query		string	true	"Sanitized filename to look up"
//	@Success		200		{object}	StatusResponse
//	@Failure		400		{array}		response.ErrorItem
//	@Failure		500		{array}		response.ErrorItem
//	@Router			/status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	file := r.URL.Query().Get("file")
	if file == "" {
		response.Fail(w, http.StatusBadRequest, "You must pass a file parameter.")
		return
	}

	res, err := h.status.Query(r.Context(), file)
	if err != nil {
		response.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	if res.Failed {
		response.Fail(w, http.StatusInternalServerError, "upload-failed")
		return
	}

	response.JSON(w, http.StatusOK, StatusResponse{FinishedUploading: res.Finished})
}

// Preflight godoc
//
//	@Summary	CORS preflight for the upload endpoint
//	@Tags		uploads
//	@Success	200
//	@Router		/upload [options]
func (h *Handler) Preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Upload godoc
//
//	@Summary		Relay a multipart upload to object storage
//	@Description	Streams each file part to the bucket and answers with the file records. The response does not wait for storage writes; poll /status for completion. A `redirect` field turns the response into a redirect with the JSON payload substituted for %s.
//	@Tags			uploads
//	@Accept			multipart/form-data
//	@Produce		json
//	@Success		200	{array}	FileInfo
//	@Failure		400	{array}	response.ErrorItem
//	@Failure		403	{array}	response.ErrorItem
//	@Router			/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	form, err := r.MultipartReader()
	if err != nil {
		response.Fail(w, http.StatusBadRequest, "multipart form body required")
		return
	}

	res := h.svc.Process(r.Context(), form)
	if !res.Authorized {
		response.Fail(w, http.StatusForbidden, "Forbidden")
		return
	}

	response.Result(w, r, res.Files, res.Redirect)
}
