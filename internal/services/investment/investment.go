// Package services содержит бизнес-логику жизненного цикла инвестиций:
// покупку плана, лимит одновременных вложений, созревание и запрос вывода.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/investment-club/internal/catalog"
	"github.com/magabrotheeeer/investment-club/internal/lib/sl"
	"github.com/magabrotheeeer/investment-club/internal/models"
)

// Лимит одновременных открытых инвестиций на пользователя.
const maxOpenInvestments = 2

// InvestmentRepository определяет методы для работы с инвестициями в хранилище.
type InvestmentRepository interface {
	// CreateInvestment добавляет новую инвестицию.
	CreateInvestment(ctx context.Context, inv models.Investment) error
	// GetInvestment возвращает инвестицию по ID или ErrNotFound.
	GetInvestment(ctx context.Context, id string) (*models.Investment, error)
	// ListInvestmentsByUser возвращает все инвестиции пользователя.
	ListInvestmentsByUser(ctx context.Context, userUID string) ([]*models.Investment, error)
	// CountOpenInvestments подсчитывает инвестиции в статусах PENDING и ACTIVE.
	CountOpenInvestments(ctx context.Context, userUID string) (int, error)
	// UpdateInvestmentStatus выполняет охраняемый переход состояния.
	UpdateInvestmentStatus(ctx context.Context, id string, from, to models.InvestmentStatus) (int, error)
	// SummaryByUser считает сводку витрины пользователя.
	SummaryByUser(ctx context.Context, userUID string) (*models.Summary, error)
	// GetBankAccountByName возвращает платежные реквизиты по названию банка.
	GetBankAccountByName(ctx context.Context, bankName string) (*models.BankAccount, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Notifier добавляет запись в ленту уведомлений пользователя.
type Notifier interface {
	Notify(ctx context.Context, userUID, title, message, ntype string) error
}

// InvestmentService реализует жизненный цикл инвестиций.
type InvestmentService struct {
	repo     InvestmentRepository
	cache    Cache
	notifier Notifier
	log      *slog.Logger
}

// NewInvestmentService создает новый экземпляр InvestmentService.
func NewInvestmentService(repo InvestmentRepository, cache Cache, notifier Notifier, log *slog.Logger) *InvestmentService {
	return &InvestmentService{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		log:      log,
	}
}

// Create создает инвестицию по выбранному плану, варианту доходности и банку.
//
// У пользователя может быть не более двух инвестиций в статусах PENDING и
// ACTIVE; при превышении лимита возвращается ErrConcurrentLimit и никаких
// изменений не происходит. ExpectedGain и EndDate фиксируются из каталога
// в момент создания и больше не пересчитываются.
func (s *InvestmentService) Create(ctx context.Context, userUID string, req models.DummyCreateInvestment) (*models.Investment, error) {
	plan := catalog.PlanByID(req.PlanID)
	if plan == nil {
		return nil, fmt.Errorf("unknown plan %q: %w", req.PlanID, models.ErrNotFound)
	}
	if !catalog.IsKnownBank(req.BankName) {
		return nil, fmt.Errorf("unknown bank %q: %w", req.BankName, models.ErrNotFound)
	}

	open, err := s.repo.CountOpenInvestments(ctx, userUID)
	if err != nil {
		return nil, err
	}
	if open >= maxOpenInvestments {
		return nil, models.ErrConcurrentLimit
	}

	option := plan.Option(req.Option)
	now := time.Now().UTC()
	inv := models.Investment{
		ID:           uuid.NewString(),
		UserUID:      userUID,
		PlanID:       plan.ID,
		Option:       req.Option,
		Amount:       plan.Amount,
		ExpectedGain: option.Gain,
		StartDate:    now,
		EndDate:      now.AddDate(0, 0, option.Days),
		Status:       models.StatusPending,
		DaysPassed:   0,
		BankName:     req.BankName,
	}
	if err := s.repo.CreateInvestment(ctx, inv); err != nil {
		return nil, err
	}
	s.log.Info("created new investment",
		slog.String("id", inv.ID), slog.String("plan", plan.ID), slog.String("option", req.Option))

	cacheKey := fmt.Sprintf("investment:%s", inv.ID)
	if err := s.cache.Set(cacheKey, inv, time.Hour); err != nil {
		s.log.Warn("failed to cache investment", slog.String("key", cacheKey), slog.Any("err", err))
	}

	if err := s.notifier.Notify(ctx, userUID, "Investment registered",
		"Awaiting validation of your transfer receipt via Telegram support.",
		models.NotificationInfo); err != nil {
		s.log.Warn("failed to notify user", sl.Err(err))
	}

	return &inv, nil
}

// List возвращает все инвестиции пользователя.
func (s *InvestmentService) List(ctx context.Context, userUID string) ([]*models.Investment, error) {
	return s.repo.ListInvestmentsByUser(ctx, userUID)
}

// Summary возвращает сводку витрины пользователя.
func (s *InvestmentService) Summary(ctx context.Context, userUID string) (*models.Summary, error) {
	return s.repo.SummaryByUser(ctx, userUID)
}

// RequestWithdrawal запрашивает вывод средств по созревшей инвестиции.
//
// Инвестиция другого пользователя неотличима от несуществующей.
// Допустим только переход из ACTIVE; до даты созревания возвращается
// ErrNotMatured. Созревание проверяется по запросу, фоновых переходов нет.
func (s *InvestmentService) RequestWithdrawal(ctx context.Context, userUID, id string, req models.DummyWithdraw) error {
	inv, err := s.repo.GetInvestment(ctx, id)
	if err != nil {
		return err
	}
	if inv.UserUID != userUID {
		return models.ErrNotFound
	}
	if inv.Status != models.StatusActive {
		return models.ErrInvalidTransition
	}
	if !inv.IsMatured(time.Now().UTC()) {
		return models.ErrNotMatured
	}

	rows, err := s.repo.UpdateInvestmentStatus(ctx, id, models.StatusActive, models.StatusWithdrawalPending)
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrInvalidTransition
	}
	s.log.Info("withdrawal requested",
		slog.String("id", id), slog.String("method", req.Method))

	cacheKey := fmt.Sprintf("investment:%s", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	if err := s.notifier.Notify(ctx, userUID, "Withdrawal requested",
		fmt.Sprintf("Payout via %s is under review.", req.Method),
		models.NotificationInfo); err != nil {
		s.log.Warn("failed to notify user", sl.Err(err))
	}
	return nil
}

// BankCoordinates возвращает платежные реквизиты выбранного банка,
// используя кеш или репозиторий.
func (s *InvestmentService) BankCoordinates(ctx context.Context, bankName string) (*models.BankAccount, error) {
	var result *models.BankAccount
	cacheKey := fmt.Sprintf("bank:%s", bankName)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return result, nil
	}
	result, err = s.repo.GetBankAccountByName(ctx, bankName)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache bank account", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}
