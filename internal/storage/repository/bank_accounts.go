package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/investment-club/internal/models"
)

// ListBankAccounts возвращает все банковские реквизиты клуба.
func (s *Storage) ListBankAccounts(ctx context.Context) ([]*models.BankAccount, error) {
	const op = "storage.ListBankAccounts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, bank_name, account_number, iban, holder_name
			  FROM bank_accounts
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.BankAccount
	for rows.Next() {
		var item models.BankAccount
		if err := rows.Scan(&item.ID, &item.BankName, &item.AccountNumber,
			&item.IBAN, &item.HolderName); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetBankAccountByName возвращает реквизиты по названию банка.
// Инвестиции ссылаются на банк именно по имени.
func (s *Storage) GetBankAccountByName(ctx context.Context, bankName string) (*models.BankAccount, error) {
	const op = "storage.GetBankAccountByName"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, bank_name, account_number, iban, holder_name
			  FROM bank_accounts
			  WHERE bank_name = $1`
	var result models.BankAccount
	row := s.DB.QueryRowContext(ctx, query, bankName)
	if err := row.Scan(&result.ID, &result.BankName, &result.AccountNumber,
		&result.IBAN, &result.HolderName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// UpdateBankAccount обновляет IBAN и имя владельца счета.
// Возвращает название банка обновлённой записи, чтобы вызывающая
// сторона могла инвалидировать кеш реквизитов по имени.
func (s *Storage) UpdateBankAccount(ctx context.Context, id, iban, holderName string) (string, error) {
	const op = "storage.UpdateBankAccount"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE bank_accounts SET iban = $1, holder_name = $2 WHERE id = $3
			  RETURNING bank_name`
	var bankName string
	if err := s.DB.QueryRowContext(ctx, query, iban, holderName, id).Scan(&bankName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return bankName, nil
}
