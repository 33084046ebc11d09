package http

import (
	"net/http"
	"strconv"

	"github.com/pkl-smk/pkl-backend-go/internal/domain/absensi"
	"github.com/pkl-smk/pkl-backend-go/internal/handler/http/response"
)

type AbsensiHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	GetMyAbsensi(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type absensiHandlerImpl struct {
	absensiService absensi.AbsensiService
}

func NewAbsensiHandler(absensiService absensi.AbsensiService) AbsensiHandler {
	return &absensiHandlerImpl{
		absensiService: absensiService,
	}
}

// CheckIn implements AbsensiHandler.
func (h *absensiHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	result, err := h.absensiService.CheckIn(r.Context(), absensi.CheckInRequest{})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check in successful", result)
}

// CheckOut implements AbsensiHandler.
func (h *absensiHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.absensiService.CheckOut(r.Context(), absensi.CheckOutRequest{})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check out successful", result)
}

// Today implements AbsensiHandler.
func (h *absensiHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	result, err := h.absensiService.TodayStatus(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyAbsensi implements AbsensiHandler.
func (h *absensiHandlerImpl) GetMyAbsensi(w http.ResponseWriter, r *http.Request) {
	filter := absensiFilterFromQuery(r)
	filter.SiswaID = "" // scoped by the token, not the query

	result, err := h.absensiService.GetMyAbsensi(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Items, listMeta(result.Page, result.Limit, result.TotalItems))
}

// List implements AbsensiHandler.
func (h *absensiHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.absensiService.ListAbsensi(r.Context(), absensiFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Items, listMeta(result.Page, result.Limit, result.TotalItems))
}

func absensiFilterFromQuery(r *http.Request) absensi.ListFilter {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	return absensi.ListFilter{
		SiswaID:   q.Get("siswa_id"),
		Status:    q.Get("status"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		Page:      page,
		Limit:     limit,
	}
}

func listMeta(page, limit int, totalItems int64) *response.Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = int((totalItems + int64(limit) - 1) / int64(limit))
	}
	return &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
