package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/STS-Engineer/back-pointeuse/internal/domain/attendance"
	"github.com/STS-Engineer/back-pointeuse/internal/handler/http/response"
	rosterstore "github.com/STS-Engineer/back-pointeuse/internal/service/roster"
	"github.com/go-chi/chi/v5"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 1000
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	ByDate(w http.ResponseWriter, r *http.Request)
	ByEmployee(w http.ResponseWriter, r *http.Request)
	ByEmployeeAndDate(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
	AvailableDates(w http.ResponseWriter, r *http.Request)
	Employees(w http.ResponseWriter, r *http.Request)
	Logs(w http.ResponseWriter, r *http.Request)
	Diagnostics(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	store             *rosterstore.Store
	loc               *time.Location
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, store *rosterstore.Store, loc *time.Location) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		store:             store,
		loc:               loc,
	}
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	snap := h.attendanceService.Snapshot()
	limit, offset := pagination(r)

	records := snap.Records
	total := len(records)
	records = pageRecords(records, limit, offset)

	response.SuccessWithMeta(w, records, &response.Meta{
		Limit:      limit,
		Offset:     offset,
		TotalItems: total,
	})
}

// Summary implements AttendanceHandler.
func (h *attendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("detailed") == "true" {
		response.Success(w, h.attendanceService.DetailedStats())
		return
	}
	response.Success(w, h.attendanceService.Summary())
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	today := time.Now().In(h.loc).Format("2006-01-02")
	report, err := h.attendanceService.ByDate(today)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}

// ByDate implements AttendanceHandler.
func (h *attendanceHandlerImpl) ByDate(w http.ResponseWriter, r *http.Request) {
	report, err := h.attendanceService.ByDate(chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}

// ByEmployee implements AttendanceHandler.
func (h *attendanceHandlerImpl) ByEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	report, err := h.attendanceService.ByEmployee(id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}

// ByEmployeeAndDate implements AttendanceHandler.
func (h *attendanceHandlerImpl) ByEmployeeAndDate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	report, err := h.attendanceService.ByEmployeeAndDate(id, chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}

// Report implements AttendanceHandler.
func (h *attendanceHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.attendanceService.Report(chi.URLParam(r, "start"), chi.URLParam(r, "end"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}

// AvailableDates implements AttendanceHandler.
func (h *attendanceHandlerImpl) AvailableDates(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.attendanceService.AvailableDates())
}

// Employees implements AttendanceHandler.
func (h *attendanceHandlerImpl) Employees(w http.ResponseWriter, r *http.Request) {
	type employeeItem struct {
		ID     int    `json:"id"`
		Code   string `json:"code"`
		Name   string `json:"name"`
		CardNo string `json:"card_no"`
	}

	items := make([]employeeItem, 0, h.store.Size())
	for _, emp := range h.store.Employees() {
		items = append(items, employeeItem{
			ID:     emp.ID,
			Code:   emp.Code,
			Name:   emp.DisplayName,
			CardNo: rosterstore.CardNo(emp.Code),
		})
	}
	response.Success(w, items)
}

// Logs implements AttendanceHandler.
func (h *attendanceHandlerImpl) Logs(w http.ResponseWriter, r *http.Request) {
	snap := h.attendanceService.Snapshot()
	limit, offset := pagination(r)

	events := snap.Events
	total := len(events)
	if offset >= len(events) {
		events = nil
	} else {
		events = events[offset:]
	}
	if len(events) > limit {
		events = events[:limit]
	}

	response.SuccessWithMeta(w, events, &response.Meta{
		Limit:      limit,
		Offset:     offset,
		TotalItems: total,
	})
}

// Diagnostics implements AttendanceHandler.
func (h *attendanceHandlerImpl) Diagnostics(w http.ResponseWriter, r *http.Request) {
	snap := h.attendanceService.Snapshot()
	response.Success(w, map[string]any{
		"snapshot_id":  snap.ID,
		"generated_at": snap.GeneratedAt,
		"real_data":    snap.RealData,
		"diagnostics":  snap.Diagnostics,
	})
}

// Refresh implements AttendanceHandler.
func (h *attendanceHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Refresh(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance snapshot refreshed", result)
}

// Health implements AttendanceHandler.
func (h *attendanceHandlerImpl) Health(w http.ResponseWriter, r *http.Request) {
	snap := h.attendanceService.Snapshot()
	response.Success(w, map[string]any{
		"status":       "ok",
		"snapshot_id":  snap.ID,
		"generated_at": snap.GeneratedAt,
		"real_data":    snap.RealData,
		"employees":    h.store.Size(),
	})
}

func pagination(r *http.Request) (limit, offset int) {
	limit = defaultPageLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxPageLimit {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

func pageRecords(records []attendance.Record, limit, offset int) []attendance.Record {
	if offset >= len(records) {
		return nil
	}
	records = records[offset:]
	if len(records) > limit {
		records = records[:limit]
	}
	return records
}
