package web

// errors.go maps load failures to stable error codes.
//
// Clients quote the code when reporting a failed load. Data faults carry the
// stage and row in the message so the offending line can be found in the
// export.
//
//	FILE001 - Export exceeds LOAD_MAX_FILE_SIZE (413)
//	FILE002 - Export is not valid CSV (400)
//	FILE003 - Export lacks required columns (400)
//	FILE004 - Not a multipart form with a "file" part (400)
//	ETL001  - A natural key did not resolve (422)
//	ETL002  - A cell is malformed (422)
//	ETL003  - A violation matches several inspections (422)
//	ETL004  - Stored data holds a duplicate natural key (409)
//	RUN001  - Another load is running (429)
//	RUN002  - The load ran past LOAD_TIMEOUT (504)
//	DB001   - Database unavailable (503)
//	SYS001  - Unexpected failure (500)

import (
	"context"
	"errors"
	"net/http"

	"github.com/JonMunkholm/inspections/internal/etl"
	"github.com/JonMunkholm/inspections/internal/extract"
	"github.com/JonMunkholm/inspections/internal/logging"
	"github.com/JonMunkholm/inspections/internal/pipeline"
)

// errNoFile is returned when the multipart form has no file part.
var errNoFile = errors.New("no file provided")

// errDatabaseDown marks a failed health check.
var errDatabaseDown = errors.New("database unavailable")

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Error  string `json:"error"`
	Action string `json:"action,omitempty"`
	Code   string `json:"code"`
	RunID  string `json:"run_id,omitempty"`
}

// userMessage is the client-facing description of an error class.
type userMessage struct {
	status int
	code   string
	action string
	detail bool // expose err.Error() to the client
}

// mapError classifies err by the sentinel it wraps.
func mapError(err error) userMessage {
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &tooLarge):
		return userMessage{http.StatusRequestEntityTooLarge, "FILE001", "Split the export or raise LOAD_MAX_FILE_SIZE", false}
	case errors.Is(err, extract.ErrInvalidCSV):
		return userMessage{http.StatusBadRequest, "FILE002", "Upload a comma-separated export", true}
	case errors.Is(err, extract.ErrMissingColumns):
		return userMessage{http.StatusBadRequest, "FILE003", "Check the header row against the open-data export", true}
	case errors.Is(err, errNoFile):
		return userMessage{http.StatusBadRequest, "FILE004", "Send the export in the \"file\" form field", true}
	case errors.Is(err, pipeline.ErrBusy):
		return userMessage{http.StatusTooManyRequests, "RUN001", "Retry after the running load completes", true}
	case errors.Is(err, context.DeadlineExceeded):
		return userMessage{http.StatusGatewayTimeout, "RUN002", "Retry with a smaller export or raise LOAD_TIMEOUT", false}
	case errors.Is(err, etl.ErrAmbiguous):
		return userMessage{http.StatusUnprocessableEntity, "ETL003", "Remove duplicate inspections from the export", true}
	case errors.Is(err, etl.ErrLookup):
		return userMessage{http.StatusUnprocessableEntity, "ETL001", "Fix the referenced value in the export", true}
	case errors.Is(err, etl.ErrParse):
		return userMessage{http.StatusUnprocessableEntity, "ETL002", "Dates must be M/D/YYYY and scores whole numbers", true}
	case errors.Is(err, etl.ErrDuplicateKey):
		return userMessage{http.StatusConflict, "ETL004", "Reset the database and reload", true}
	case errors.Is(err, errDatabaseDown):
		return userMessage{http.StatusServiceUnavailable, "DB001", "Please try again in a few moments", false}
	default:
		return userMessage{http.StatusInternalServerError, "SYS001", "", false}
	}
}

// respondError logs err with request context and writes its mapped response.
func respondError(w http.ResponseWriter, r *http.Request, err error, runID string) {
	msg := mapError(err)

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", msg.status,
		"code", msg.code,
		"error", err,
	)

	body := ErrorResponse{
		Error:  http.StatusText(msg.status),
		Action: msg.action,
		Code:   msg.code,
		RunID:  runID,
	}
	if msg.detail {
		body.Error = err.Error()
	}
	if msg.status == http.StatusTooManyRequests {
		w.Header().Set("Retry-After", "30")
	}
	writeJSON(w, msg.status, body)
}
