package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mystery-message/internal/config"
	"github.com/MKhiriev/mystery-message/internal/logger"
)

// Storages aggregates the repositories used by the service layer.
type Storages struct {
	UserRepository    UserRepository
	MessageRepository MessageRepository

	closer func() error
}

// NewStorages builds the repositories for cfg.Driver. SQL backends are
// connected and migrated before use.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.StorageDriverMemory:
		mem := NewMemoryStorage()
		log.Info().Str("func", "NewStorages").Msg("using in-memory storage")
		return &Storages{
			UserRepository:    mem,
			MessageRepository: mem,
			closer:            func() error { return nil },
		}, nil
	case config.StorageDriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.StorageDriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		MessageRepository: NewMessageRepository(db, log),
		closer:            db.Close,
	}, nil
}

// Close releases the underlying database, if any.
func (s *Storages) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer()
}
