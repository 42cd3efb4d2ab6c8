package plugins

import (
	"context"
	"fmt"

	"mod-compat/core/checksum"
	"mod-compat/core/plugin"
	"mod-compat/core/wire"

	"go.uber.org/zap"
)

// RegisterRequest is the body of a plugin registration.
type RegisterRequest struct {
	GUID       string `json:"guid"`
	Version    string `json:"version"`
	Level      string `json:"level"`
	Strictness string `json:"strictness"`
}

// Record parses the request into a plugin record.
func (r RegisterRequest) Record() (plugin.Record, error) {
	version, err := plugin.ParseVersion(r.Version)
	if err != nil {
		return plugin.Record{}, err
	}
	level, err := plugin.ParseLevel(r.Level)
	if err != nil {
		return plugin.Record{}, err
	}
	strictness, err := plugin.ParseStrictness(r.Strictness)
	if err != nil {
		return plugin.Record{}, err
	}
	rec := plugin.Record{GUID: r.GUID, Version: version, Level: level, Strictness: strictness}
	return rec, rec.Validate()
}

// ChecksumResponse reports the inventory checksum.
type ChecksumResponse struct {
	Checksum string `json:"checksum"`
	// Required counts the plugins every lobby member must run.
	Required int `json:"required"`
}

// Service manages the local plugin inventory.
type Service struct {
	registry *plugin.Registry
	checksum *checksum.Generator
	encoder  *wire.Encoder
	store    *Store
	logger   *zap.Logger
}

// NewService creates a plugin service. store may be nil to keep registrations in memory only.
func NewService(registry *plugin.Registry, gen *checksum.Generator, encoder *wire.Encoder, store *Store, logger *zap.Logger) *Service {
	return &Service{
		registry: registry,
		checksum: gen,
		encoder:  encoder,
		store:    store,
		logger:   logger,
	}
}

// Restore registers every persisted registration. It returns how many were restored.
func (s *Service) Restore(ctx context.Context) (int, error) {
	if s.store == nil {
		return 0, nil
	}
	records, err := s.store.Load(ctx)
	if err != nil {
		return 0, err
	}
	for _, rec := range records {
		if err := s.registry.Register(rec); err != nil {
			s.logger.Warn("Skipping invalid stored registration", zap.String("guid", rec.GUID), zap.Error(err))
		}
	}
	return len(records), nil
}

// List returns the inventory in registration order.
func (s *Service) List() []plugin.Record {
	return s.registry.List()
}

// Get returns one plugin.
func (s *Service) Get(guid string) (plugin.Record, error) {
	rec, ok := s.registry.Get(guid)
	if !ok {
		return plugin.Record{}, fmt.Errorf("%w: %s", plugin.ErrNotRegistered, guid)
	}
	return rec, nil
}

// Register validates and stores a plugin, replacing any previous registration of its guid.
// When persisting fails the registry is left as it was.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (plugin.Record, error) {
	rec, err := req.Record()
	if err != nil {
		return plugin.Record{}, err
	}
	previous, existed := s.registry.Get(rec.GUID)
	if err := s.registry.Register(rec); err != nil {
		return plugin.Record{}, err
	}

	// The registry may have degraded the level.
	stored, _ := s.registry.Get(rec.GUID)
	if s.store != nil {
		if err := s.store.Save(ctx, stored); err != nil {
			s.rollback(rec.GUID, previous, existed)
			return plugin.Record{}, err
		}
	}

	s.logger.Info("Plugin registered",
		zap.String("guid", stored.GUID),
		zap.String("version", stored.Version.String()),
		zap.String("level", string(stored.Level)),
	)
	return stored, nil
}

// Unregister removes a plugin. The stored registration goes first so a failed delete
// leaves the plugin registered.
func (s *Service) Unregister(ctx context.Context, guid string) error {
	if _, ok := s.registry.Get(guid); !ok {
		return fmt.Errorf("%w: %s", plugin.ErrNotRegistered, guid)
	}
	if s.store != nil {
		if err := s.store.Delete(ctx, guid); err != nil {
			return err
		}
	}
	if err := s.registry.Unregister(guid); err != nil {
		return err
	}
	s.logger.Info("Plugin unregistered", zap.String("guid", guid))
	return nil
}

func (s *Service) rollback(guid string, previous plugin.Record, existed bool) {
	var err error
	if existed {
		err = s.registry.Register(previous)
	} else {
		err = s.registry.Unregister(guid)
	}
	if err != nil {
		s.logger.Error("Failed to roll back plugin registration", zap.String("guid", guid), zap.Error(err))
	}
}

// Checksum returns the current inventory checksum.
func (s *Service) Checksum() ChecksumResponse {
	required := 0
	for _, rec := range s.registry.List() {
		if rec.Level == plugin.LevelEveryone {
			required++
		}
	}
	return ChecksumResponse{Checksum: s.checksum.Checksum(), Required: required}
}

// Pages encodes the inventory as it would be published, without resolving variable levels.
func (s *Service) Pages() wire.Report {
	return s.encoder.EncodeReport(s.registry.List())
}
