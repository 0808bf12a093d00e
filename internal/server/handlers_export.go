package server

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/bodythrive/onerm/internal/render"
)

func (s *Server) handleExportText(w http.ResponseWriter, r *http.Request) {
	view, err := viewFromQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	width := render.DefaultTextWidth
	if v := r.URL.Query().Get("width"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 10 && parsed <= 120 {
			width = parsed
		}
	}

	var buf bytes.Buffer
	if err := render.Text(&buf, render.FromView(view), width); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	view, err := viewFromQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := render.XLSX(&buf, render.FromView(view)); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="onerm.xlsx"`)
	w.Write(buf.Bytes())
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	view, err := viewFromQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := render.PDF(&buf, render.FromView(view)); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="onerm.pdf"`)
	w.Write(buf.Bytes())
}
