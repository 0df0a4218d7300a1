package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is where Pprof expects to be mounted.
const PprofPrefix = "/debug/pprof/"

// Pprof serves the runtime profiles. Mount it at PprofPrefix.
func Pprof() http.Handler {
	mux := http.NewServeMux()

	// Index also serves the named profiles (heap, goroutine, ...)
	mux.HandleFunc("GET "+PprofPrefix, pprof.Index)
	mux.HandleFunc("GET "+PprofPrefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc("GET "+PprofPrefix+"profile", pprof.Profile)
	// symbol lookups are GET for one address and POST for a batch
	mux.HandleFunc("GET "+PprofPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc("POST "+PprofPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc("GET "+PprofPrefix+"trace", pprof.Trace)

	return mux
}
