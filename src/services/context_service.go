package services

import (
	"context"
	"fmt"
	"time"

	"advisory-server/src/models"
	"advisory-server/src/repositories"
	"advisory-server/src/schemas"
	"advisory-server/src/utils"
	redis_utils "advisory-server/src/utils/redis"
)

// contextCacheTTL bounds staleness of cached contexts. The cache key carries
// a content hash of the underlying rows, so a changed portfolio always
// misses; the TTL only caps how long identical data is reused.
const contextCacheTTL = 5 * time.Minute

type ContextServiceI interface {
	BuildContext(ctx context.Context, advisorID, clientID string) (*schemas.ClientContext, error)
}

// ContextService assembles the per-client financial snapshot consumed by
// the AI prompt layer.
type ContextService struct {
	clientRepo   repositories.ClientRepository
	assetRepo    repositories.AssetRepository
	cashFlowRepo repositories.CashFlowRepository
	goalRepo     repositories.GoalRepository

	portfolio PortfolioServiceI

	redisHandler *redis_utils.RedisHandler
	memoryCache  *utils.Cache[schemas.ClientContext]
}

// NewContextService wires the builder. redisHandler may be nil, in which
// case an in-process cache is used instead.
func NewContextService(
	clientRepo repositories.ClientRepository,
	assetRepo repositories.AssetRepository,
	cashFlowRepo repositories.CashFlowRepository,
	goalRepo repositories.GoalRepository,
	portfolio PortfolioServiceI,
	redisHandler *redis_utils.RedisHandler,
) *ContextService {
	return &ContextService{
		clientRepo:   clientRepo,
		assetRepo:    assetRepo,
		cashFlowRepo: cashFlowRepo,
		goalRepo:     goalRepo,
		portfolio:    portfolio,
		redisHandler: redisHandler,
		memoryCache:  utils.NewCache[schemas.ClientContext](),
	}
}

// BuildContext fetches the client and its owned rows scoped to the given
// advisor and computes the context. A client id that does not exist, or that
// belongs to another advisor, yields a NotFound error before any further
// work happens.
func (cs *ContextService) BuildContext(ctx context.Context, advisorID, clientID string) (*schemas.ClientContext, error) {
	client, err := cs.clientRepo.GetByID(ctx, advisorID, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, utils.NotFound("client not found")
	}

	assets, err := cs.assetRepo.GetAllByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	incomes, err := cs.cashFlowRepo.GetIncomeSources(ctx, clientID)
	if err != nil {
		return nil, err
	}
	expenses, err := cs.cashFlowRepo.GetExpenses(ctx, clientID)
	if err != nil {
		return nil, err
	}
	goals, err := cs.goalRepo.GetAllByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	cacheKey := cs.cacheKey(client, assets, incomes, expenses, goals)
	if cached, ok := cs.fromCache(ctx, cacheKey); ok {
		return cached, nil
	}

	clientContext := cs.compose(client, assets, incomes, expenses, goals)
	cs.toCache(ctx, cacheKey, clientContext)
	return clientContext, nil
}

func (cs *ContextService) compose(
	client *models.Client,
	assets []models.Asset,
	incomes []models.IncomeSource,
	expenses []models.Expense,
	goals []models.Goal,
) *schemas.ClientContext {
	clientContext := &schemas.ClientContext{
		ClientID:      client.ID,
		Name:          client.Name,
		RiskTolerance: string(client.RiskTolerance),
		AnnualIncome:  client.AnnualIncome,
		NetWorth:      client.NetWorth,
		Portfolio:     cs.portfolio.AggregatePortfolio(assets),
		Allocations:   cs.portfolio.ClassifyAllocations(assets),
		CashFlow:      cs.portfolio.MonthlyCashFlow(incomes, expenses),
	}

	if client.DateOfBirth != nil {
		age := utils.CalculateAge(*client.DateOfBirth, time.Now())
		clientContext.Age = &age
	}

	for _, goal := range goals {
		contextGoal := schemas.ContextGoal{Name: goal.Name, TargetAmount: goal.TargetAmount}
		if goal.TargetDate != nil {
			date := goal.TargetDate.Format(utils.ShortDashDateLayout)
			contextGoal.TargetDate = &date
		}
		clientContext.Goals = append(clientContext.Goals, contextGoal)
	}
	return clientContext
}

// cacheKey derives a deterministic key from the client id and a content
// hash over every row that feeds the context.
func (cs *ContextService) cacheKey(
	client *models.Client,
	assets []models.Asset,
	incomes []models.IncomeSource,
	expenses []models.Expense,
	goals []models.Goal,
) string {
	parts := []string{client.ID, client.UpdatedAt.UTC().String()}
	for _, asset := range assets {
		parts = append(parts, fmt.Sprintf("a:%s:%f:%f:%d:%s",
			asset.ID, asset.CurrentValue, asset.GrowthRate, asset.ProjectionYears, asset.UpdatedAt.UTC()))
	}
	for _, income := range incomes {
		parts = append(parts, fmt.Sprintf("i:%s:%f:%s:%t", income.ID, income.Amount, income.Frequency, income.IsActive))
	}
	for _, expense := range expenses {
		parts = append(parts, fmt.Sprintf("e:%s:%f:%s:%t", expense.ID, expense.Amount, expense.Frequency, expense.IsActive))
	}
	for _, goal := range goals {
		parts = append(parts, fmt.Sprintf("g:%s:%f", goal.ID, goal.TargetAmount))
	}
	return "client-context:" + client.ID + ":" + redis_utils.GenerateUUID(parts...)
}

func (cs *ContextService) fromCache(ctx context.Context, key string) (*schemas.ClientContext, bool) {
	if cs.redisHandler != nil {
		var cached schemas.ClientContext
		if err := cs.redisHandler.Get(ctx, key, &cached); err == nil {
			return &cached, true
		}
		return nil, false
	}
	if cached, ok := cs.memoryCache.Get(key, time.Time{}); ok {
		return &cached, true
	}
	return nil, false
}

func (cs *ContextService) toCache(ctx context.Context, key string, clientContext *schemas.ClientContext) {
	if cs.redisHandler != nil {
		// Cache failures are advisory only and never fail the build.
		if err := cs.redisHandler.Set(ctx, key, clientContext, contextCacheTTL); err != nil {
			utils.LoggerFromContext(ctx).Warnf("failed to cache client context: %v", err)
		}
		return
	}
	cs.memoryCache.Set(key, *clientContext, contextCacheTTL)
}
