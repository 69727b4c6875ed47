package outfit

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"vestiaKiosk/domain"
	"vestiaKiosk/pkg/logger"
)

// ---- Repository interfaces ----

type CatalogRepository interface {
	List(ctx context.Context, filter domain.CatalogFilter) ([]domain.CatalogItem, error)
	FindBySKU(ctx context.Context, sku string) (domain.CatalogItem, bool, error)
}

type SessionRepository interface {
	Snapshot(ctx context.Context) (domain.SessionSnapshot, error)
}

type ProfileRepository interface {
	FindByCustomerID(ctx context.Context, customerID string) (domain.CustomerProfile, bool, error)
}

// outfitService fetches catalog, session and profile snapshots at the
// boundary and hands them to the pure scorer.
type outfitService struct {
	catalogRepo CatalogRepository
	sessionRepo SessionRepository
	profileRepo ProfileRepository
	scorer      *Scorer
}

func NewOutfitService(catalogRepo CatalogRepository, sessionRepo SessionRepository, profileRepo ProfileRepository, cfg Config) (*outfitService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring config: %w", err)
	}
	return &outfitService{
		catalogRepo: catalogRepo,
		sessionRepo: sessionRepo,
		profileRepo: profileRepo,
		scorer:      NewScorer(cfg),
	}, nil
}

func (s *outfitService) Recommend(ctx context.Context, req domain.RecommendRequest) (*domain.RecommendResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	start := time.Now()
	traceID := TraceIDFromContext(ctx)

	in, err := s.load(ctx, req.BaseSKU, req.StoreID, req.CustomerID, req.SessionID)
	if err != nil {
		return nil, err
	}

	recs := s.scorer.RecommendByCategory(in.base, in.catalog, req.TargetCategories, req.TopK, in.profile, in.stats)

	served := 0
	for category, items := range recs {
		RecommendationsServedTotal.WithLabelValues(category).Add(float64(len(items)))
		for _, it := range items {
			CandidateScore.Observe(it.Score)
		}
		served += len(items)
	}
	PersonalizedRequestsTotal.WithLabelValues("recommend", strconv.FormatBool(in.profile != nil)).Inc()

	logger.Debug("recommendations computed",
		"trace_id", traceID,
		"base_sku", in.base.SKU,
		"store_id", in.base.StoreID,
		"categories", len(recs),
		"served", served,
		"personalized", in.profile != nil,
		"latency", time.Since(start),
	)

	return &domain.RecommendResponse{
		BaseItem:             in.base,
		Recommendations:      recs,
		CustomerPersonalized: in.profile != nil,
		StatsSummary:         in.stats.Summary(),
	}, nil
}

func (s *outfitService) MixMatch(ctx context.Context, req domain.MixMatchRequest) (*domain.MixMatchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	start := time.Now()
	traceID := TraceIDFromContext(ctx)

	in, err := s.load(ctx, req.BaseSKU, req.StoreID, req.CustomerID, req.SessionID)
	if err != nil {
		return nil, err
	}

	res := s.scorer.GenerateOutfits(in.base, in.catalog, req.TopK, in.profile, in.stats)

	OutfitCombinationsTotal.WithLabelValues("accepted").Add(float64(res.TotalCombinations))
	OutfitCombinationsTotal.WithLabelValues("clash").Add(float64(res.Rejected))
	PersonalizedRequestsTotal.WithLabelValues("mix_match", strconv.FormatBool(in.profile != nil)).Inc()

	logger.Debug("outfits generated",
		"trace_id", traceID,
		"base_sku", in.base.SKU,
		"enumerated", res.Enumerated,
		"rejected", res.Rejected,
		"survivors", res.TotalCombinations,
		"returned", len(res.Outfits),
		"latency", time.Since(start),
	)

	return &domain.MixMatchResponse{
		BaseItem:             in.base,
		TotalCombinations:    res.TotalCombinations,
		Outfits:              res.Outfits,
		CustomerPersonalized: in.profile != nil,
	}, nil
}

// engineInput is everything the scorer needs, already resolved.
type engineInput struct {
	base    domain.CatalogItem
	catalog []domain.CatalogItem
	profile *domain.CustomerProfile
	stats   *domain.StatisticalMatrices
}

func (s *outfitService) load(ctx context.Context, baseSKU, storeID, customerID, sessionID string) (*engineInput, error) {
	traceID := TraceIDFromContext(ctx)

	baseSKU = strings.TrimSpace(baseSKU)
	if baseSKU == "" {
		return nil, domain.Validationf("baseSku is required")
	}

	base, ok, err := s.catalogRepo.FindBySKU(ctx, baseSKU)
	if err != nil {
		logger.Error("failed to find base item", "trace_id", traceID, "sku", baseSKU, "error", err)
		return nil, fmt.Errorf("find base item: %w: %w", domain.ErrInternal, err)
	}
	if !ok || (storeID != "" && base.StoreID != storeID) {
		return nil, domain.NotFoundf("item %s not found", baseSKU)
	}

	catalog, err := s.catalogRepo.List(ctx, domain.CatalogFilter{StoreID: base.StoreID, InStockOnly: true})
	if err != nil {
		logger.Error("failed to list catalog", "trace_id", traceID, "store_id", base.StoreID, "error", err)
		return nil, fmt.Errorf("list catalog: %w: %w", domain.ErrInternal, err)
	}

	// Session history is advisory: without it every statistic falls back
	// to its default.
	snapshot, err := s.sessionRepo.Snapshot(ctx)
	if err != nil {
		logger.Warn("session history unavailable, scoring with defaults", "trace_id", traceID, "error", err)
		snapshot = domain.SessionSnapshot{}
	}

	return &engineInput{
		base:    base,
		catalog: catalog,
		profile: s.resolveProfile(ctx, customerID, sessionID, snapshot),
		stats:   BuildStatisticalMatrices(snapshot),
	}, nil
}

func (s *outfitService) resolveProfile(ctx context.Context, customerID, sessionID string, snapshot domain.SessionSnapshot) *domain.CustomerProfile {
	var static *domain.CustomerProfile
	if customerID != "" && s.profileRepo != nil {
		p, ok, err := s.profileRepo.FindByCustomerID(ctx, customerID)
		switch {
		case err != nil:
			logger.Warn("profile lookup failed, falling back to session profile",
				"trace_id", TraceIDFromContext(ctx), "customer_id", customerID, "error", err)
		case ok:
			static = &p
		}
	}

	var items []domain.ScanEvent
	if sessionID != "" {
		items = snapshot[sessionID]
	}
	return ResolveProfile(static, items)
}
