// Package controller holds the HTTP middleware shared by the JSON API and the
// server-rendered pages: request IDs with access logging, per-route latency
// metrics, CORS, and CDN cache headers. Pprof exposes runtime profiles when
// enabled.
package controller
