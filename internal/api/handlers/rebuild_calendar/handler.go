package rebuild_calendar

import (
	"net/http"

	"github.com/m04kA/SMC-TransportService/internal/api/handlers"
)

const msgRebuildFailed = "перестроение календаря не удалось"

type Handler struct {
	index  CalendarIndex
	logger Logger
}

func NewHandler(index CalendarIndex, logger Logger) *Handler {
	return &Handler{
		index:  index,
		logger: logger,
	}
}

// StatusResponse HTTP response model
type StatusResponse struct {
	Status string `json:"status"`
}

// Handle POST /api/v1/calendar/rebuild
// Путь восстановления после расхождений инкрементальных правок индекса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.index.Rebuild(r.Context()); err != nil {
		h.logger.Error("POST /calendar/rebuild - Rebuild failed: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgRebuildFailed)
		return
	}

	h.logger.Info("POST /calendar/rebuild - Index rebuilt successfully")
	handlers.RespondJSON(w, http.StatusOK, StatusResponse{Status: "rebuilt"})
}
