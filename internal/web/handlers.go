package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/JonMunkholm/inspections/internal/extract"
	"github.com/JonMunkholm/inspections/internal/logging"
)

// multipartMemory is how much of an upload is buffered in memory before
// spilling to a temp file.
const multipartMemory = 32 << 20

// handleHealth reports database connectivity.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		respondError(w, r, fmt.Errorf("%w: %v", errDatabaseDown, err), "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleStats reports the row count of every table.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	counts, err := s.db.Counts(r.Context())
	if err != nil {
		respondError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// handleLoadStatus reports whether a load is running and the last result.
func (s *Server) handleLoadStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.loader.Status())
}

// handleLoad replaces all stored data with the uploaded export. The request
// blocks until the load commits or fails.
func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Load.MaxFileSize)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if !errors.As(err, &tooLarge) {
			err = fmt.Errorf("%w: %v", errNoFile, err)
		}
		respondError(w, r, err, "")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			err = errNoFile
		}
		respondError(w, r, err, "")
		return
	}
	defer file.Close()

	logger := logging.FromContext(r.Context())
	logger.Info("load received", "file", header.Filename, "size", header.Size)

	rows, err := extract.ReadRows(file)
	if err != nil {
		respondError(w, r, err, "")
		return
	}

	result, err := s.loader.Run(r.Context(), rows)
	if err != nil {
		respondError(w, r, err, result.RunID)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
