package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pkl-smk/pkl-backend-go/internal/domain/jurnal"
	"github.com/pkl-smk/pkl-backend-go/internal/handler/http/response"
)

type JurnalHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetMyJurnal(w http.ResponseWriter, r *http.Request)
	ListSupervised(w http.ResponseWriter, r *http.Request)
	Comment(w http.ResponseWriter, r *http.Request)
}

type jurnalHandlerImpl struct {
	jurnalService jurnal.JurnalService
}

func NewJurnalHandler(jurnalService jurnal.JurnalService) JurnalHandler {
	return &jurnalHandlerImpl{
		jurnalService: jurnalService,
	}
}

// Create implements JurnalHandler.
func (h *jurnalHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req jurnal.CreateJurnalRequest

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	// Get JSON data from 'data' field
	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}

	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Documentation photo is optional
	file, fileHeader, err := r.FormFile("dokumentasi")
	if err == nil {
		defer file.Close()
		req.File = file
		req.FileHeader = fileHeader
	} else if err != http.ErrMissingFile {
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}

	result, err := h.jurnalService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Journal entry created", result)
}

// Update implements JurnalHandler.
func (h *jurnalHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req jurnal.UpdateJurnalRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update jurnal decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.jurnalService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Journal entry updated", result)
}

// Get implements JurnalHandler.
func (h *jurnalHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.jurnalService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyJurnal implements JurnalHandler.
func (h *jurnalHandlerImpl) GetMyJurnal(w http.ResponseWriter, r *http.Request) {
	result, err := h.jurnalService.GetMyJurnal(r.Context(), jurnalFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Items, listMeta(result.Page, result.Limit, result.TotalItems))
}

// ListSupervised implements JurnalHandler.
func (h *jurnalHandlerImpl) ListSupervised(w http.ResponseWriter, r *http.Request) {
	result, err := h.jurnalService.ListSupervised(r.Context(), jurnalFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Items, listMeta(result.Page, result.Limit, result.TotalItems))
}

// Comment implements JurnalHandler.
func (h *jurnalHandlerImpl) Comment(w http.ResponseWriter, r *http.Request) {
	var req jurnal.CommentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Comment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.JurnalID = chi.URLParam(r, "id")

	result, err := h.jurnalService.Comment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Comment added", result)
}

func jurnalFilterFromQuery(r *http.Request) jurnal.ListFilter {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	return jurnal.ListFilter{
		SiswaID:   q.Get("siswa_id"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		Page:      page,
		Limit:     limit,
	}
}
