package v1handler

import (
	"net/http"
)

type runCalculatorRequest struct {
	Inputs map[string]any `json:"inputs"`
}

func (h Handler) ListCalculators(w http.ResponseWriter, _ *http.Request) error {
	return ok(w, map[string]any{"calculators": h.deps.Tools.List()})
}

// RunCalculator runs a calculator with {"inputs": {...}}. Missing inputs take
// the field defaults.
func (h Handler) RunCalculator(w http.ResponseWriter, r *http.Request) error {
	var req runCalculatorRequest
	if err := h.decode(w, r, &req); err != nil {
		return err
	}

	res, err := h.deps.Tools.Run(r.Context(), r.PathValue("id"), req.Inputs)
	if err != nil {
		return err //nolint: wrapcheck
	}

	return ok(w, res)
}
