// Package pg bootstraps the PostgreSQL pool backing traffic records.
//
// Connect opens a *pgxpool.Pool with startup retries, Migrate applies
// embedded goose migrations through the same pool, and Healthcheck exposes a
// readiness probe. IsDuplicateKeyError and IsNotFoundError classify pgx errors
// at the storage boundary.
//
//	pool, err := pg.Connect(ctx, cfg.Postgres)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, pgstore.Migrations, "migrations", cfg.Postgres, log); err != nil {
//		return err
//	}
package pg
