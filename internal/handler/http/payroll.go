package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/prms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/prms-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/export"
	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/prms-backend-go/internal/service/realtime"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ProcessBatch(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
	CalculateTax(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	now func() time.Time
}

func NewPayrollHandler() PayrollHandler {
	return &payrollHandlerImpl{now: time.Now}
}

// periodParam reads ?period=, which must be empty or YYYY-MM.
func periodParam(r *http.Request) (string, error) {
	period := r.URL.Query().Get("period")
	if period == "" {
		return "", nil
	}
	if _, ok := validator.IsValidPeriod(period); !ok {
		return "", payroll.ErrInvalidPeriod
	}
	return period, nil
}

func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	period, err := periodParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records := realtime.MustProvider(r.Context()).Store().Payrolls(period)
	out := make([]payroll.RecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, payroll.NewRecordResponse(rec))
	}
	response.Success(w, out)
}

// ProcessBatch runs payroll for the requested period, defaulting to the current month.
func (h *payrollHandlerImpl) ProcessBatch(w http.ResponseWriter, r *http.Request) {
	var req payroll.BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("Process payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}
	if req.Period == "" {
		req.Period = h.now().Format(payroll.PeriodLayout)
	}

	count, err := realtime.MustProvider(r.Context()).ProcessBatchPayroll(req.Period)
	if err != nil {
		slog.Error("Process payroll error", "period", req.Period, "error", err)
		response.HandleError(w, err)
		return
	}

	message := fmt.Sprintf("Processed payroll for %d employees", count)
	if count == 0 {
		message = "Payroll for " + req.Period + " is already up to date"
	}
	response.SuccessWithMessage(w, message, payroll.BatchResponse{Period: req.Period, Processed: count})
}

// Export downloads the payroll records of ?period= (all when absent) as a spreadsheet.
func (h *payrollHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	period, err := periodParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records := realtime.MustProvider(r.Context()).Store().Payrolls(period)
	var buf bytes.Buffer
	if err := export.PayrollWorkbook(&buf, records); err != nil {
		slog.Error("Payroll export error", "error", err)
		response.HandleError(w, err)
		return
	}

	name := "payroll.xlsx"
	if period != "" {
		name = "payroll-" + period + ".xlsx"
	}
	response.Attachment(w, name, export.XLSXMime, buf.Bytes())
}

func (h *payrollHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	s := realtime.MustProvider(r.Context()).Store()
	rec, err := s.GetPayroll(chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Records outlive deleted employees.
	emp, err := s.GetEmployee(rec.EmployeeID)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		emp = employee.Employee{ID: rec.EmployeeID, Name: rec.EmployeeName}
	} else if err != nil {
		response.HandleError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Payslip(&buf, rec, emp); err != nil {
		slog.Error("Payslip render error", "payroll_id", rec.ID, "error", err)
		response.HandleError(w, err)
		return
	}
	response.Attachment(w, fmt.Sprintf("payslip-%s-%s.pdf", rec.EmployeeID, rec.Period), export.PDFMime, buf.Bytes())
}

// CalculateTax answers with a JSON breakdown, or a CSV download for ?format=csv.
func (h *payrollHandlerImpl) CalculateTax(w http.ResponseWriter, r *http.Request) {
	var req payroll.TaxRequest
	if !decodeJSON(w, r, &req, "Calculate tax") {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	breakdown := payroll.CalculateTax(req.GrossIncome, req.State)

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		response.Success(w, breakdown)
	case "csv":
		var buf bytes.Buffer
		if err := export.TaxCSV(&buf, breakdown); err != nil {
			response.HandleError(w, err)
			return
		}
		response.Attachment(w, "tax-calculation.csv", export.CSVMime, buf.Bytes())
	default:
		response.BadRequest(w, "format must be json or csv", map[string]string{"format": format})
	}
}
