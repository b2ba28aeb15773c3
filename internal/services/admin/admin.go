// Package services содержит бизнес-логику сверки для административной панели:
// очереди ожидающих активаций и выплат, подтверждение переходов,
// правку банковских реквизитов и сводную статистику.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/investment-club/internal/lib/sl"
	"github.com/magabrotheeeer/investment-club/internal/models"
)

// AdminRepository определяет методы хранилища, нужные для сверки.
type AdminRepository interface {
	// GetInvestment возвращает инвестицию по ID или ErrNotFound.
	GetInvestment(ctx context.Context, id string) (*models.Investment, error)
	// ListInvestmentsByStatus возвращает очередь сверки с именами владельцев.
	ListInvestmentsByStatus(ctx context.Context, status models.InvestmentStatus) ([]*models.InvestmentInfo, error)
	// UpdateInvestmentStatus выполняет охраняемый переход состояния.
	UpdateInvestmentStatus(ctx context.Context, id string, from, to models.InvestmentStatus) (int, error)
	// ConfirmPayout атомарно переводит инвестицию в PAID и увеличивает счетчик выплат.
	ConfirmPayout(ctx context.Context, id string) (int64, int, error)
	// ListBankAccounts возвращает все банковские реквизиты.
	ListBankAccounts(ctx context.Context) ([]*models.BankAccount, error)
	// UpdateBankAccount обновляет реквизиты и возвращает название банка.
	UpdateBankAccount(ctx context.Context, id, iban, holderName string) (string, error)
	// SetUserBlocked выставляет признак блокировки аккаунта.
	SetUserBlocked(ctx context.Context, userUID string, blocked bool) (int, error)
	// GetAdminStats собирает сводную статистику панели.
	GetAdminStats(ctx context.Context) (*models.AdminStats, error)
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

// AdminService реализует операции сверки.
type AdminService struct {
	repo     AdminRepository
	cache    Cache
	notifier Notifier
	log      *slog.Logger
}

// NewAdminService создает новый экземпляр AdminService.
func NewAdminService(repo AdminRepository, cache Cache, notifier Notifier, log *slog.Logger) *AdminService {
	return &AdminService{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		log:      log,
	}
}

// ListPending возвращает очередь инвестиций, ожидающих активации.
func (s *AdminService) ListPending(ctx context.Context) ([]*models.InvestmentInfo, error) {
	return s.repo.ListInvestmentsByStatus(ctx, models.StatusPending)
}

// ListWithdrawalRequests возвращает очередь запросов на выплату.
func (s *AdminService) ListWithdrawalRequests(ctx context.Context) ([]*models.InvestmentInfo, error) {
	return s.repo.ListInvestmentsByStatus(ctx, models.StatusWithdrawalPending)
}

// Activate подтверждает получение перевода и переводит инвестицию
// из PENDING в ACTIVE. Повторный вызов по уже активной инвестиции
// возвращает ErrInvalidTransition.
func (s *AdminService) Activate(ctx context.Context, id string) error {
	inv, err := s.repo.GetInvestment(ctx, id)
	if err != nil {
		return err
	}

	rows, err := s.repo.UpdateInvestmentStatus(ctx, id, models.StatusPending, models.StatusActive)
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrInvalidTransition
	}
	s.log.Info("investment activated", slog.String("id", id))

	s.invalidateInvestment(id)

	if err := s.notifier.Notify(ctx, inv.UserUID, "Activated!",
		"Your investment has been activated successfully.",
		models.NotificationSuccess); err != nil {
		s.log.Warn("failed to notify user", sl.Err(err))
	}
	return nil
}

// ConfirmPayout подтверждает выплату: инвестиция переходит из
// WITHDRAWAL_PENDING в PAID, накопительный счетчик выплат увеличивается
// на её expectedGain в той же транзакции. Повторный вызов не меняет
// счетчик и возвращает ErrInvalidTransition.
func (s *AdminService) ConfirmPayout(ctx context.Context, id string) error {
	inv, err := s.repo.GetInvestment(ctx, id)
	if err != nil {
		return err
	}

	gain, rows, err := s.repo.ConfirmPayout(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrInvalidTransition
	}
	s.log.Info("payout confirmed", slog.String("id", id), slog.Int64("gain", gain))

	s.invalidateInvestment(id)

	if err := s.notifier.Notify(ctx, inv.UserUID, "Paid!",
		"Your withdrawal has been processed and sent.",
		models.NotificationSuccess); err != nil {
		s.log.Warn("failed to notify user", sl.Err(err))
	}
	return nil
}

// ListBankAccounts возвращает все банковские реквизиты клуба.
func (s *AdminService) ListBankAccounts(ctx context.Context) ([]*models.BankAccount, error) {
	return s.repo.ListBankAccounts(ctx)
}

// UpdateBankAccount правит IBAN и владельца счета. Реквизиты — витринные
// данные: правка не затрагивает уже созданные инвестиции, они хранят
// только название банка.
func (s *AdminService) UpdateBankAccount(ctx context.Context, id string, req models.DummyUpdateBankAccount) error {
	bankName, err := s.repo.UpdateBankAccount(ctx, id, req.IBAN, req.HolderName)
	if err != nil {
		return err
	}
	s.log.Info("bank account updated", slog.String("id", id), slog.String("bank", bankName))

	cacheKey := fmt.Sprintf("bank:%s", bankName)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return nil
}

// BlockUser выставляет признак блокировки аккаунта участника.
func (s *AdminService) BlockUser(ctx context.Context, userUID string, blocked bool) error {
	rows, err := s.repo.SetUserBlocked(ctx, userUID, blocked)
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrNotFound
	}
	s.log.Info("user block flag updated",
		slog.String("user_uid", userUID), slog.Bool("blocked", blocked))
	return nil
}

// Stats возвращает четыре карточки админ-панели.
func (s *AdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	return s.repo.GetAdminStats(ctx)
}

func (s *AdminService) invalidateInvestment(id string) {
	cacheKey := fmt.Sprintf("investment:%s", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
}
