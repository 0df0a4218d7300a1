// Package bus2ride holds the files compiled into the binary: database
// migrations and the authored site content.
package bus2ride

import "embed"

// Migrations contains the goose SQL migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// Content contains the authored content records under content/.
//
//go:embed content/*.yaml
var Content embed.FS
