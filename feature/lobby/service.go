package lobby

import (
	"context"
	"errors"
	"fmt"

	"mod-compat/core/checksum"
	"mod-compat/core/plugin"
	"mod-compat/core/reconcile"
	"mod-compat/core/wire"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PublishResult describes a publish of the local inventory into a lobby.
type PublishResult struct {
	LobbyID  string `json:"lobby_id"`
	Checksum string `json:"checksum"`
	wire.Report
}

// DiffResponse is a lobby diff narrowed to one category.
type DiffResponse struct {
	LobbyID    string                       `json:"lobby_id"`
	State      reconcile.LobbyCompatibility `json:"state"`
	Published  bool                         `json:"published"`
	Category   reconcile.Category           `json:"category"`
	Summary    reconcile.Summary            `json:"summary"`
	Entries    []reconcile.DiffEntry        `json:"entries"`
	ParseError string                       `json:"parse_error,omitempty"`
}

// JoinDecision tells whether the local client may join a lobby.
type JoinDecision struct {
	LobbyID string   `json:"lobby_id"`
	Allowed bool     `json:"allowed"`
	Reason  string   `json:"reason,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

// LobbySummary is one row of a lobby listing.
type LobbySummary struct {
	LobbyID       string                       `json:"lobby_id"`
	State         reconcile.LobbyCompatibility `json:"state"`
	Modded        bool                         `json:"modded"`
	Joinable      bool                         `json:"joinable"`
	Checksum      string                       `json:"checksum"`
	ChecksumMatch bool                         `json:"checksum_match"`
	Summary       reconcile.Summary            `json:"summary"`
}

// Service implements lobby publishing and compatibility checks.
type Service struct {
	store      MetadataStore
	registry   *plugin.Registry
	checksum   *checksum.Generator
	encoder    *wire.Encoder
	reconciler *reconcile.Reconciler
	logger     *zap.Logger
}

// NewService creates a lobby service. The reconciler must read from the same store.
func NewService(store MetadataStore, registry *plugin.Registry, gen *checksum.Generator, encoder *wire.Encoder, reconciler *reconcile.Reconciler, logger *zap.Logger) *Service {
	return &Service{
		store:      store,
		registry:   registry,
		checksum:   gen,
		encoder:    encoder,
		reconciler: reconciler,
		logger:     logger,
	}
}

// GetMetadata returns a lobby's metadata.
func (s *Service) GetMetadata(ctx context.Context, lobbyID string) (map[string]string, error) {
	return s.store.Metadata(ctx, lobbyID)
}

// PutMetadata replaces a lobby's metadata and drops its cached diff.
func (s *Service) PutMetadata(ctx context.Context, lobbyID string, metadata map[string]string) error {
	if err := s.store.Replace(ctx, lobbyID, metadata); err != nil {
		return err
	}
	s.reconciler.Invalidate(lobbyID)
	return nil
}

// DeleteLobby removes a lobby and its cached diff.
func (s *Service) DeleteLobby(ctx context.Context, lobbyID string) error {
	if err := s.store.Delete(ctx, lobbyID); err != nil {
		return err
	}
	s.reconciler.Invalidate(lobbyID)
	return nil
}

// Publish writes the local inventory into the lobby's metadata. Variable levels are
// resolved against the lobby's current metadata before encoding; the checksum covers the
// declared levels only. An empty lobbyID creates a new lobby.
func (s *Service) Publish(ctx context.Context, lobbyID string) (*PublishResult, error) {
	if lobbyID == "" {
		lobbyID = uuid.NewString()
	}

	metadata, err := s.store.Metadata(ctx, lobbyID)
	if errors.Is(err, ErrLobbyNotFound) {
		metadata = map[string]string{}
	} else if err != nil {
		return nil, err
	}

	records, resolveErrs := plugin.ResolveAll(s.registry.List(), metadata)
	for _, rerr := range resolveErrs {
		s.logger.Warn("Variable level resolver failed, publishing as client_only", zap.String("lobby_id", lobbyID), zap.Error(rerr))
	}

	report := s.encoder.EncodeReport(records)
	if len(report.Dropped) > 0 {
		s.logger.Warn("Inventory exceeds metadata budget",
			zap.String("lobby_id", lobbyID),
			zap.Int("encoded", report.Encoded),
			zap.Strings("dropped", report.Dropped),
		)
	}

	// Declared levels only, so the value matches what clients compute from their registry.
	sum := s.checksum.Checksum()
	wire.Publish(metadata, report.Pages, sum)

	if err := s.PutMetadata(ctx, lobbyID, metadata); err != nil {
		return nil, err
	}

	s.logger.Info("Inventory published",
		zap.String("lobby_id", lobbyID),
		zap.Int("pages", len(report.Pages)),
		zap.String("checksum", sum),
	)
	return &PublishResult{LobbyID: lobbyID, Checksum: sum, Report: report}, nil
}

// Diff returns the lobby diff narrowed to category.
func (s *Service) Diff(ctx context.Context, lobbyID string, category reconcile.Category) (*DiffResponse, error) {
	diff, err := s.diff(ctx, lobbyID)
	if err != nil {
		return nil, err
	}

	resp := &DiffResponse{
		LobbyID:   lobbyID,
		State:     diff.Classify(),
		Published: diff.Published,
		Category:  category,
		Summary:   diff.Summarize(),
		Entries:   diff.Filter(category),
	}
	if diff.ParseError != nil {
		resp.ParseError = diff.ParseError.Error()
	}
	return resp, nil
}

// JoinDecision refuses lobbies flagged not joinable and lobbies requiring plugins the
// client lacks.
func (s *Service) JoinDecision(ctx context.Context, lobbyID string) (*JoinDecision, error) {
	metadata, err := s.store.Metadata(ctx, lobbyID)
	if err != nil {
		return nil, err
	}
	diff, err := s.diff(ctx, lobbyID)
	if err != nil {
		return nil, err
	}

	decision := &JoinDecision{LobbyID: lobbyID, Allowed: true}
	if !wire.ReadFlags(metadata).Joinable {
		decision.Allowed = false
		decision.Reason = "lobby is not joinable"
		return decision, nil
	}
	if diff.RequiresMissingPlugins() {
		decision.Allowed = false
		decision.Reason = "lobby requires plugins that are not installed"
		for _, e := range diff.Entries {
			if e.Result == reconcile.ResultClientMissingMod {
				decision.Missing = append(decision.Missing, e.GUID)
			}
		}
	}
	return decision, nil
}

// Search lists every stored lobby, compatible first, with checksum matches ahead of the rest.
func (s *Service) Search(ctx context.Context) ([]LobbySummary, error) {
	ids, err := s.store.Lobbies(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.summaries(ctx, ids)
	if err != nil {
		return nil, err
	}

	var filtered []LobbySummary
	for _, l := range all {
		if l.ChecksumMatch {
			filtered = append(filtered, l)
		}
	}
	return sortSummaries(filtered, all), nil
}

// Sort orders the given lobbies: filtered is the pre-filtered subset of all.
func (s *Service) Sort(ctx context.Context, filtered, all []string) ([]LobbySummary, error) {
	byID := make(map[string]LobbySummary)
	load := func(ids []string) ([]LobbySummary, error) {
		out := make([]LobbySummary, 0, len(ids))
		for _, id := range ids {
			if cached, ok := byID[id]; ok {
				out = append(out, cached)
				continue
			}
			summary, err := s.summary(ctx, id)
			if err != nil {
				return nil, err
			}
			byID[id] = summary
			out = append(out, summary)
		}
		return out, nil
	}

	f, err := load(filtered)
	if err != nil {
		return nil, err
	}
	a, err := load(all)
	if err != nil {
		return nil, err
	}
	return sortSummaries(f, a), nil
}

// FilterByChecksum keeps the lobbies whose published checksum equals want. An empty
// want uses the local checksum; an empty local checksum keeps every lobby.
func (s *Service) FilterByChecksum(ctx context.Context, lobbyIDs []string, want string) ([]string, error) {
	if want == "" {
		want = s.checksum.Checksum()
	}

	out := make([]string, 0, len(lobbyIDs))
	for _, id := range lobbyIDs {
		metadata, err := s.store.Metadata(ctx, id)
		if errors.Is(err, ErrLobbyNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if reconcile.ChecksumMatches(want, wire.ReadFlags(metadata).Checksum) {
			out = append(out, id)
		}
	}
	return out, nil
}

func (s *Service) diff(ctx context.Context, lobbyID string) (*reconcile.LobbyDiff, error) {
	diff, err := s.reconciler.Diff(ctx, lobbyID)
	if err != nil {
		return nil, err
	}
	if diff.ParseError != nil {
		s.logger.Warn("Lobby inventory is malformed", zap.String("lobby_id", lobbyID), zap.Error(diff.ParseError))
	}
	for _, rerr := range diff.ResolverErrors {
		s.logger.Warn("Variable level resolver failed", zap.String("lobby_id", lobbyID), zap.Error(rerr))
	}
	return diff, nil
}

func (s *Service) summaries(ctx context.Context, ids []string) ([]LobbySummary, error) {
	out := make([]LobbySummary, 0, len(ids))
	for _, id := range ids {
		summary, err := s.summary(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, summary)
	}
	return out, nil
}

func (s *Service) summary(ctx context.Context, lobbyID string) (LobbySummary, error) {
	metadata, err := s.store.Metadata(ctx, lobbyID)
	if err != nil {
		return LobbySummary{}, fmt.Errorf("lobby %s: %w", lobbyID, err)
	}
	diff, err := s.diff(ctx, lobbyID)
	if err != nil {
		return LobbySummary{}, err
	}

	flags := wire.ReadFlags(metadata)
	return LobbySummary{
		LobbyID:       lobbyID,
		State:         diff.Classify(),
		Modded:        flags.Modded,
		Joinable:      flags.Joinable,
		Checksum:      flags.Checksum,
		ChecksumMatch: reconcile.ChecksumMatches(s.checksum.Checksum(), flags.Checksum),
		Summary:       diff.Summarize(),
	}, nil
}

func sortSummaries(filtered, all []LobbySummary) []LobbySummary {
	return reconcile.SortLobbies(filtered, all,
		func(l LobbySummary) string { return l.LobbyID },
		func(l LobbySummary) reconcile.LobbyCompatibility { return l.State },
	)
}
