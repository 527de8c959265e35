package handlers

import (
	"net/http"

	"github.com/dmateos23/tennis-tour-system/services"
)

type AdminHandler struct {
	adminService services.AdminService
}

func NewAdminHandler(as services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: as}
}

// CleanupHandler обрабатывает DELETE /api/admin/cleanup - полная
// очистка данных тура. Доступно только администратору.
func (h *AdminHandler) CleanupHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.Cleanup(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"message": "all tour data deleted"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
