/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isecurityimpl

import "net/http"

// asResponseWriter does not wrap twice
func asResponseWriter(w http.ResponseWriter) *responseWriter {
	if rw, ok := w.(*responseWriter); ok {
		return rw
	}
	return &responseWriter{ResponseWriter: w}
}

func (w *responseWriter) WriteHeader(statusCode int) {
	w.committed = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.committed = true
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		w.committed = true
		f.Flush()
	}
}

// Unwrap is used by http.ResponseController
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// IsCommitted reports whether the response status is sent already
func IsCommitted(w http.ResponseWriter) bool {
	if rw, ok := w.(*responseWriter); ok {
		return rw.committed
	}
	return false
}
