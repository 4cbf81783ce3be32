package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"sitedesk/internal/models"
	"sitedesk/internal/taxonomy"
	"sitedesk/pkg/metrics"
)

// ErrRefreshInFlight is returned to a second refresh while one is
// already running and no cached summary exists yet.
var ErrRefreshInFlight = errors.New("dashboard refresh already in flight")

const (
	// FetchTimeout bounds one whole aggregate cycle.
	FetchTimeout = 20 * time.Second

	cacheKey = "dashboard:summary"
	lockKey  = "dashboard:refresh"
	cacheTTL = 15 * time.Second
)

type Stats struct {
	ActiveProjects     int64 `json:"active_projects"`
	CompletedThisMonth int64 `json:"completed_this_month"`
	PendingDocuments   int64 `json:"pending_documents"`
	UnresolvedInsights int64 `json:"unresolved_insights"`
}

// RecentLog is a site log joined with its parent project's name.
type RecentLog struct {
	ID          uint             `json:"id"`
	ProjectID   uint             `json:"project_id"`
	ProjectName string           `json:"project_name"`
	Content     string           `json:"content"`
	LogType     taxonomy.LogType `json:"log_type"`
	WorkDate    time.Time        `json:"work_date"`
	CreatedAt   time.Time        `json:"created_at"`
}

type Summary struct {
	Stats          Stats                        `json:"stats"`
	RecentProjects []models.Project             `json:"recent_projects"`
	ProjectsByStep map[taxonomy.ProcessStep]int `json:"projects_by_step"`
	RecentInsights []models.AiInsight           `json:"recent_insights"`
	RecentLogs     []RecentLog                  `json:"recent_logs"`
	GeneratedAt    time.Time                    `json:"generated_at"`
}

// Aggregator fans out the independent dashboard queries, caches the
// merged result in redis, and refuses to run two cycles at once.
type Aggregator struct {
	db       *gorm.DB
	rdb      *redis.Client // optional; nil disables cache and lock
	log      *zap.Logger
	inflight atomic.Bool
}

func NewAggregator(db *gorm.DB, rdb *redis.Client, log *zap.Logger) *Aggregator {
	return &Aggregator{db: db, rdb: rdb, log: log}
}

// BuildStepHistogram seeds every known pipeline stage with zero, then
// counts projects per stage. Stages without projects stay at zero; the
// values always sum to the number of input projects with known stages.
func BuildStepHistogram(stepValues []taxonomy.ProcessStep) map[taxonomy.ProcessStep]int {
	counts := make(map[taxonomy.ProcessStep]int, len(taxonomy.Steps()))
	for _, s := range taxonomy.Steps() {
		counts[s] = 0
	}
	for _, s := range stepValues {
		counts[s]++
	}
	return counts
}

// Summary serves a cached view when one is fresh, otherwise runs one
// aggregate fetch cycle. A second caller during a running cycle gets
// ErrRefreshInFlight rather than a duplicate cycle.
func (a *Aggregator) Summary(ctx context.Context) (*Summary, error) {
	if s := a.cached(ctx); s != nil {
		metrics.IncrementDashboardRefresh("cached")
		return s, nil
	}

	if !a.inflight.CompareAndSwap(false, true) {
		metrics.IncrementDashboardRefresh("inflight")
		return nil, ErrRefreshInFlight
	}
	defer a.inflight.Store(false)

	if !a.acquireLock(ctx) {
		// Another instance is refreshing; re-check its result.
		if s := a.cached(ctx); s != nil {
			metrics.IncrementDashboardRefresh("cached")
			return s, nil
		}
		metrics.IncrementDashboardRefresh("inflight")
		return nil, ErrRefreshInFlight
	}
	defer a.releaseLock()

	fetchCtx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()

	s, err := a.fetch(fetchCtx)
	if err != nil {
		metrics.IncrementDashboardRefresh("error")
		return nil, err
	}

	a.store(ctx, s)
	metrics.IncrementDashboardRefresh("fresh")
	return s, nil
}

// fetch runs the eight independent queries concurrently and merges the
// results once all have settled.
func (a *Aggregator) fetch(ctx context.Context) (*Summary, error) {
	monthStart := firstOfMonth(time.Now())

	s := &Summary{}
	var stepValues []taxonomy.ProcessStep

	g, gctx := errgroup.WithContext(ctx)
	db := func() *gorm.DB { return a.db.WithContext(gctx) }

	g.Go(func() error {
		return db().Model(&models.Project{}).
			Where("status = ?", taxonomy.StatusActive).
			Count(&s.Stats.ActiveProjects).Error
	})
	g.Go(func() error {
		return db().Model(&models.Project{}).
			Where("status = ? AND updated_at >= ?", taxonomy.StatusCompleted, monthStart).
			Count(&s.Stats.CompletedThisMonth).Error
	})
	g.Go(func() error {
		return db().Model(&models.Document{}).
			Where("status = ?", taxonomy.DocPending).
			Count(&s.Stats.PendingDocuments).Error
	})
	g.Go(func() error {
		return db().Model(&models.AiInsight{}).
			Where("is_resolved = ?", false).
			Count(&s.Stats.UnresolvedInsights).Error
	})
	g.Go(func() error {
		return db().
			Where("status = ?", taxonomy.StatusActive).
			Order("updated_at desc").
			Limit(5).
			Find(&s.RecentProjects).Error
	})
	g.Go(func() error {
		return db().Model(&models.Project{}).
			Where("status = ?", taxonomy.StatusActive).
			Pluck("process_step", &stepValues).Error
	})
	g.Go(func() error {
		return db().
			Where("is_resolved = ?", false).
			Order("created_at desc").
			Limit(3).
			Find(&s.RecentInsights).Error
	})
	g.Go(func() error {
		return db().Model(&models.SiteLog{}).
			Select("site_logs.id, site_logs.project_id, projects.name as project_name, site_logs.content, site_logs.log_type, site_logs.work_date, site_logs.created_at").
			Joins("JOIN projects ON projects.id = site_logs.project_id").
			Order("site_logs.created_at desc").
			Limit(5).
			Scan(&s.RecentLogs).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.ProjectsByStep = BuildStepHistogram(stepValues)
	s.GeneratedAt = time.Now()
	return s, nil
}

func firstOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

func (a *Aggregator) cached(ctx context.Context) *Summary {
	if a.rdb == nil {
		return nil
	}
	raw, err := a.rdb.Get(ctx, cacheKey).Bytes()
	if err != nil {
		return nil
	}
	var s Summary
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

func (a *Aggregator) store(ctx context.Context, s *Summary) {
	if a.rdb == nil {
		return
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err := a.rdb.Set(ctx, cacheKey, raw, cacheTTL).Err(); err != nil {
		a.log.Warn("failed to cache dashboard summary", zap.Error(err))
	}
}

// acquireLock takes the cross-instance refresh lock. Without redis the
// in-process guard is the only protection, which matches a single-node
// deployment.
func (a *Aggregator) acquireLock(ctx context.Context) bool {
	if a.rdb == nil {
		return true
	}
	ok, err := a.rdb.SetNX(ctx, lockKey, 1, FetchTimeout).Result()
	if err != nil {
		// Redis down: do not block refreshes on it.
		return true
	}
	return ok
}

func (a *Aggregator) releaseLock() {
	if a.rdb == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = a.rdb.Del(ctx, lockKey).Err()
}
