// Package tools runs the planning calculators offered on the tools pages.
// Every calculator publishes a schema of typed fields. Inputs are filled from
// field defaults, checked against the schema and only then handed to the
// calculator, so calculators never see a value of the wrong type.
package tools

import (
	"bus2ride/pkg/logger"
	"bus2ride/pkg/serrors"
	"context"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// FieldType is the kind of value a field accepts.
type FieldType string

const (
	FieldNumber FieldType = "number"
	FieldText   FieldType = "text"
	FieldSelect FieldType = "select"
)

// Field describes one calculator input.
type Field struct {
	Name    string    `json:"name"`
	Label   string    `json:"label"`
	Type    FieldType `json:"type"`
	Default any       `json:"default"`
	Options []string  `json:"options,omitempty"`
	Step    float64   `json:"step,omitempty"`
}

// Schema describes a calculator.
type Schema struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"desc,omitempty"`
	Fields      []Field `json:"fields"`
}

// Result is a calculator run together with the inputs it used.
type Result struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"desc,omitempty"`
	Inputs      map[string]any `json:"inputs"`
	Result      map[string]any `json:"result"`
}

type calcFunc func(in values) map[string]any

type calculator struct {
	schema Schema
	calc   calcFunc
}

type tools struct {
	order []string
	byID  map[string]calculator
}

// New returns the calculator registry.
func New() Tools {
	t := &tools{byID: make(map[string]calculator, len(registry))}
	for _, c := range registry {
		t.order = append(t.order, c.schema.ID)
		t.byID[c.schema.ID] = c
	}

	return t
}

func (t *tools) List() []Schema {
	res := make([]Schema, 0, len(t.order))
	for _, id := range t.order {
		res = append(res, t.byID[id].schema)
	}

	return res
}

func (t *tools) Schema(id string) (*Schema, error) {
	c, ok := t.byID[id]
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "unknown tool: %q", id)
	}
	s := c.schema

	return &s, nil
}

// Run normalizes and validates the inputs and runs the calculator. All
// validation problems are reported together.
func (t *tools) Run(ctx context.Context, id string, inputs map[string]any) (*Result, error) {
	c, ok := t.byID[id]
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "unknown tool: %q", id)
	}

	normalized, problems := Validate(c.schema, inputs)
	if len(problems) > 0 {
		logger.Debug(ctx, "rejected calculator inputs", zap.String("tool", id), zap.Strings("problems", problems))

		return nil, serrors.With(serrors.ErrBadRequest,
			"invalid inputs for %q: %s", c.schema.Title, strings.Join(problems, " "))
	}

	return &Result{
		ID:          id,
		Title:       c.schema.Title,
		Description: c.schema.Description,
		Inputs:      normalized,
		Result:      c.calc(values(normalized)),
	}, nil
}

// Normalize fills missing inputs from field defaults. Numbers given as
// strings are parsed, text values are stringified and unknown keys are
// dropped. Values that cannot be coerced are kept as they are for Validate
// to report.
func Normalize(schema Schema, raw map[string]any) map[string]any {
	out := make(map[string]any, len(schema.Fields))
	for _, f := range schema.Fields {
		v, ok := raw[f.Name]
		if !ok || v == nil || v == "" {
			v = f.Default
		}

		switch f.Type {
		case FieldNumber:
			if n, ok := toNumber(v); ok {
				v = n
			}
		case FieldText:
			if v == nil {
				v = ""
			}
			if _, ok := v.(string); !ok {
				v = fmt.Sprint(v)
			}
		case FieldSelect:
		}
		out[f.Name] = v
	}

	return out
}

// Validate normalizes raw and returns the normalized inputs together with a
// human readable problem per invalid field.
func Validate(schema Schema, raw map[string]any) (map[string]any, []string) {
	normalized := Normalize(schema, raw)

	var problems []string
	for _, f := range schema.Fields {
		v := normalized[f.Name]
		switch f.Type {
		case FieldNumber:
			if n, ok := v.(float64); !ok || math.IsNaN(n) || math.IsInf(n, 0) {
				problems = append(problems, fmt.Sprintf("%q must be a number.", f.Label))
			}
		case FieldSelect:
			if s, ok := v.(string); !ok || !slices.Contains(f.Options, s) {
				problems = append(problems, fmt.Sprintf("%q must be one of: %s.", f.Label, strings.Join(f.Options, ", ")))
			}
		case FieldText:
		}
	}

	return normalized, problems
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case interface{ Float64() (float64, error) }:
		f, err := n.Float64()

		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}

		return f, true
	default:
		return 0, false
	}
}

// values gives calculators typed access to validated inputs.
type values map[string]any

func (v values) num(name string) float64 {
	n, _ := v[name].(float64)

	return n
}

// numOr treats zero as missing, the way the calculators were tuned.
func (v values) numOr(name string, fallback float64) float64 {
	if n := v.num(name); n != 0 {
		return n
	}

	return fallback
}

// count is a whole number no lower than least.
func (v values) count(name string, least float64) float64 {
	return max(least, math.Floor(v.num(name)))
}

func (v values) str(name string) string {
	s, _ := v[name].(string)

	return s
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
