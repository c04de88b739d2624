// Package repo implements the domain repositories on PostgreSQL through the
// marker-tagged statements in internal/sqlinline.
package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// AccountRepositoryPG implements domain.AccountRepository backed by PostgreSQL.
type AccountRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewAccountRepository creates a new AccountRepositoryPG.
func NewAccountRepository(sql infra.SQLExecutor) *AccountRepositoryPG {
	return &AccountRepositoryPG{sql: sql}
}

func (r *AccountRepositoryPG) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.sql.Exec(ctx, sqlinline.QInsertAccount,
		account.ID,
		account.Name,
		account.Email,
		string(account.Plan),
		string(account.Role),
		string(account.Status),
		account.Credits.Daily,
		account.Credits.MaxDaily,
		account.Credits.Monthly,
		account.Credits.MaxMonthly,
		account.JoinedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *AccountRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return scanAccount(r.sql.QueryRow(ctx, sqlinline.QSelectAccountByID, id))
}

func (r *AccountRepositoryPG) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return scanAccount(r.sql.QueryRow(ctx, sqlinline.QSelectAccountByEmail, email))
}

func (r *AccountRepositoryPG) Update(ctx context.Context, account *domain.Account) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QUpdateAccount,
		account.ID,
		account.Name,
		account.Email,
		string(account.Plan),
		string(account.Role),
		string(account.Status),
		account.Credits.Daily,
		account.Credits.MaxDaily,
		account.Credits.Monthly,
		account.Credits.MaxMonthly,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AccountRepositoryPG) List(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListAccounts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Account
	for rows.Next() {
		account, err := scanAccountFrom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *account)
	}
	return out, rows.Err()
}

func (r *AccountRepositoryPG) ReplenishDaily(ctx context.Context) error {
	_, err := r.sql.Exec(ctx, sqlinline.QReplenishDaily)
	return err
}

func (r *AccountRepositoryPG) ReplenishMonthly(ctx context.Context) error {
	_, err := r.sql.Exec(ctx, sqlinline.QReplenishMonthly)
	return err
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	account, err := scanAccountFrom(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return account, nil
}

func scanAccountFrom(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	var plan, role, status string
	if err := row.Scan(
		&a.ID, &a.Name, &a.Email, &plan, &role, &status,
		&a.Credits.Daily, &a.Credits.MaxDaily, &a.Credits.Monthly, &a.Credits.MaxMonthly,
		&a.JoinedAt,
	); err != nil {
		return nil, err
	}
	a.Plan = domain.Plan(plan)
	a.Role = domain.Role(role)
	a.Status = domain.Status(status)
	return &a, nil
}

var _ domain.AccountRepository = (*AccountRepositoryPG)(nil)
