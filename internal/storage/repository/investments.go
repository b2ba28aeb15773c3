package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/investment-club/internal/models"
)

// CreateInvestment вставляет новую запись инвестиции.
func (s *Storage) CreateInvestment(ctx context.Context, inv models.Investment) error {
	const op = "storage.CreateInvestment"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO investments (id, user_uid, plan_id, option, amount,
			      expected_gain, start_date, end_date, status, days_passed, bank_name)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := s.DB.ExecContext(ctx, query,
		inv.ID, inv.UserUID, inv.PlanID, inv.Option, inv.Amount,
		inv.ExpectedGain, inv.StartDate, inv.EndDate, inv.Status, inv.DaysPassed, inv.BankName)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetInvestment возвращает инвестицию по её ID.
func (s *Storage) GetInvestment(ctx context.Context, id string) (*models.Investment, error) {
	const op = "storage.GetInvestment"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, plan_id, option, amount, expected_gain,
			      start_date, end_date, status, days_passed, bank_name
			  FROM investments WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Investment
	if err := row.Scan(&result.ID, &result.UserUID, &result.PlanID, &result.Option,
		&result.Amount, &result.ExpectedGain, &result.StartDate, &result.EndDate,
		&result.Status, &result.DaysPassed, &result.BankName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListInvestmentsByUser возвращает все инвестиции пользователя.
func (s *Storage) ListInvestmentsByUser(ctx context.Context, userUID string) ([]*models.Investment, error) {
	const op = "storage.ListInvestmentsByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, plan_id, option, amount, expected_gain,
			      start_date, end_date, status, days_passed, bank_name
			  FROM investments
			  WHERE user_uid = $1
			  ORDER BY start_date`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Investment
	for rows.Next() {
		var item models.Investment
		if err := rows.Scan(&item.ID, &item.UserUID, &item.PlanID, &item.Option,
			&item.Amount, &item.ExpectedGain, &item.StartDate, &item.EndDate,
			&item.Status, &item.DaysPassed, &item.BankName); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountOpenInvestments подсчитывает инвестиции пользователя,
// занимающие слот лимита (PENDING или ACTIVE).
func (s *Storage) CountOpenInvestments(ctx context.Context, userUID string) (int, error) {
	const op = "storage.CountOpenInvestments"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COUNT(*) FROM investments
			  WHERE user_uid = $1 AND status IN ('PENDING', 'ACTIVE')`
	var count int
	if err := s.DB.QueryRowContext(ctx, query, userUID).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// UpdateInvestmentStatus выполняет охраняемый переход состояния:
// строка меняется только если текущий статус равен from. Возвращает
// количество изменённых строк; ноль означает, что инвестиция не в
// ожидаемом исходном состоянии.
func (s *Storage) UpdateInvestmentStatus(ctx context.Context, id string, from, to models.InvestmentStatus) (int, error) {
	const op = "storage.UpdateInvestmentStatus"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE investments SET status = $1 WHERE id = $2 AND status = $3`
	result, err := s.DB.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ConfirmPayout в одной транзакции переводит инвестицию из
// WITHDRAWAL_PENDING в PAID и увеличивает накопительный счетчик выплат
// на её expected_gain. Возвращает размер выплаты и количество изменённых
// строк; ноль строк означает, что переход недопустим, и счетчик не
// меняется — повтор вызова не может удвоить выплату.
func (s *Storage) ConfirmPayout(ctx context.Context, id string) (int64, int, error) {
	const op = "storage.ConfirmPayout"
	select {
	case <-ctx.Done():
		return 0, 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var gain int64
	query := `UPDATE investments SET status = 'PAID'
			  WHERE id = $1 AND status = 'WITHDRAWAL_PENDING'
			  RETURNING expected_gain`
	if err := tx.QueryRowContext(ctx, query, id).Scan(&gain); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, nil
		}
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE totals SET total_paid = total_paid + $1 WHERE id = 1`, gain); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	return gain, 1, nil
}

// ListInvestmentsByStatus возвращает инвестиции в заданном состоянии
// вместе с именами владельцев — очереди сверки админ-панели.
func (s *Storage) ListInvestmentsByStatus(ctx context.Context, status models.InvestmentStatus) ([]*models.InvestmentInfo, error) {
	const op = "storage.ListInvestmentsByStatus"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT i.id, i.user_uid, i.plan_id, i.option, i.amount, i.expected_gain,
			      i.start_date, i.end_date, i.status, i.days_passed, i.bank_name, u.username
			  FROM investments i
			  JOIN users u ON i.user_uid = u.uid
			  WHERE i.status = $1
			  ORDER BY i.start_date`
	rows, err := s.DB.QueryContext(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.InvestmentInfo
	for rows.Next() {
		var item models.InvestmentInfo
		if err := rows.Scan(&item.ID, &item.UserUID, &item.PlanID, &item.Option,
			&item.Amount, &item.ExpectedGain, &item.StartDate, &item.EndDate,
			&item.Status, &item.DaysPassed, &item.BankName, &item.Username); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// SummaryByUser считает сводку витрины пользователя: сумму ожидаемого
// дохода по активным инвестициям и сумму полученных выплат.
func (s *Storage) SummaryByUser(ctx context.Context, userUID string) (*models.Summary, error) {
	const op = "storage.SummaryByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT
			      COALESCE(SUM(expected_gain) FILTER (WHERE status = 'ACTIVE'), 0),
			      COALESCE(SUM(expected_gain) FILTER (WHERE status = 'PAID'), 0)
			  FROM investments
			  WHERE user_uid = $1`
	var result models.Summary
	if err := s.DB.QueryRowContext(ctx, query, userUID).Scan(
		&result.PendingYield, &result.TotalReceived); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// GetAdminStats собирает четыре карточки админ-панели: собранную сумму
// всех вложений, накопительный счетчик выплат, количество участников и
// количество инвестиций, ожидающих активации.
func (s *Storage) GetAdminStats(ctx context.Context) (*models.AdminStats, error) {
	const op = "storage.GetAdminStats"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var result models.AdminStats
	query := `SELECT
			      (SELECT COALESCE(SUM(amount), 0) FROM investments),
			      (SELECT total_paid FROM totals WHERE id = 1),
			      (SELECT COUNT(*) FROM users),
			      (SELECT COUNT(*) FROM investments WHERE status = 'PENDING')`
	if err := s.DB.QueryRowContext(ctx, query).Scan(
		&result.TotalCollected, &result.TotalPaid, &result.Investors, &result.PendingCount); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}
