package tools

import (
	"context"
)

//go:generate mockgen -package mocktools -source=interface.go -destination=mock/mocktools.go *
type Tools interface {
	List() []Schema
	Schema(id string) (*Schema, error)
	Run(ctx context.Context, id string, inputs map[string]any) (*Result, error)
}
