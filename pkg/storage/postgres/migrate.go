package postgres

import (
	"bus2ride/pkg/storage"
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
)

// MigrateResult reports the River schema versions around a Migrate call.
type MigrateResult struct {
	RiverFrom int
	RiverTo   int
}

// Migrate applies the goose migrations stored under dir in fsys and then
// brings River's tables to the latest version. Both steps are idempotent.
func (p *PgSQL) Migrate(ctx context.Context, fsys fs.FS, dir string) (MigrateResult, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return MigrateResult{}, storage.ErrAlreadyInTx
	}

	goose.SetBaseFS(fsys)
	if err := goose.SetDialect("postgres"); err != nil {
		return MigrateResult{}, fmt.Errorf("could not set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return MigrateResult{}, fmt.Errorf("could not apply migrations: %w", err)
	}

	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return MigrateResult{}, fmt.Errorf("could not create river migrator: %w", err)
	}
	all := migrator.AllVersions()
	res := MigrateResult{RiverTo: all[len(all)-1].Version}

	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return MigrateResult{}, fmt.Errorf("could not read river versions: %w", err)
	}
	if len(existing) > 0 {
		res.RiverFrom = existing[len(existing)-1].Version
	}
	if res.RiverFrom >= res.RiverTo {
		return res, nil
	}

	if _, err = migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: res.RiverTo,
	}); err != nil {
		return MigrateResult{}, fmt.Errorf("could not migrate river tables: %w", err)
	}

	return res, nil
}
