package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pkl-smk/pkl-backend-go/internal/domain/setting"
	"github.com/pkl-smk/pkl-backend-go/internal/handler/http/response"
)

type SettingHandler interface {
	GetActive(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Seed(w http.ResponseWriter, r *http.Request)
	CacheStats(w http.ResponseWriter, r *http.Request)
}

type settingHandlerImpl struct {
	settingService setting.SettingService
}

func NewSettingHandler(settingService setting.SettingService) SettingHandler {
	return &settingHandlerImpl{
		settingService: settingService,
	}
}

// GetActive implements SettingHandler.
func (h *settingHandlerImpl) GetActive(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingService.GetActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements SettingHandler.
func (h *settingHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req setting.UpdateSettingRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update setting decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance windows updated", result)
}

// Seed implements SettingHandler.
func (h *settingHandlerImpl) Seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingService.EnsureDefault(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance windows configured", result)
}

// CacheStats implements SettingHandler.
func (h *settingHandlerImpl) CacheStats(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.settingService.CacheStats())
}
