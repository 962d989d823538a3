package database

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/zoomie/transations/internal/models"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) EnsureDefaultUser(ctx context.Context) (int64, error) {
	_, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO users (name) VALUES ('default')`)
	if err != nil {
		return 0, errors.Wrap(err, "insert default user")
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, `SELECT id FROM users WHERE name = 'default'`).Scan(&id); err != nil {
		return 0, errors.Wrap(err, "select default user")
	}
	return id, nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, email, created_at FROM users ORDER BY name ASC`)
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan user")
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *Repository) CreateUser(ctx context.Context, name, email string) (*models.User, error) {
	result, err := r.db.ExecContext(ctx, `INSERT INTO users (name, email) VALUES (?, ?)`, name, email)
	if err != nil {
		return nil, errors.Wrapf(err, "create user %q", name)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "last insert id")
	}
	return r.GetUser(ctx, id)
}

// GetUser returns sql.ErrNoRows (wrapped) when the user does not exist.
func (r *Repository) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, created_at FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt)
	if err != nil {
		return nil, errors.Wrapf(err, "get user %d", id)
	}
	return &u, nil
}

// ReplaceTransactions swaps the user's stored history for txs in a single
// database transaction.
func (r *Repository) ReplaceTransactions(ctx context.Context, userID int64, txs []models.Transaction) error {
	dbtx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer dbtx.Rollback()

	if _, err := dbtx.ExecContext(ctx, `DELETE FROM transactions WHERE user_id = ?`, userID); err != nil {
		return errors.Wrap(err, "delete transactions")
	}

	stmt, err := dbtx.PrepareContext(ctx, `
		INSERT INTO transactions (
			user_id, timestamp, description, transaction_category, amount, currency, running_balance
		) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "prepare insert")
	}
	defer stmt.Close()

	for _, tx := range txs {
		_, err := stmt.ExecContext(ctx,
			userID, tx.Timestamp, tx.Description, tx.TransactionCategory,
			tx.Amount, tx.Currency, tx.RunningBalance,
		)
		if err != nil {
			return errors.Wrapf(err, "insert transaction at %s", tx.Timestamp)
		}
	}

	return errors.Wrap(dbtx.Commit(), "commit")
}

// ListTransactions returns the user's transactions oldest first.
func (r *Repository) ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, timestamp, description, transaction_category,
		       amount, currency, running_balance, created_at
		FROM transactions
		WHERE user_id = ?
		ORDER BY timestamp ASC, id ASC
	`, userID)
	if err != nil {
		return nil, errors.Wrap(err, "list transactions")
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.Timestamp, &tx.Description, &tx.TransactionCategory,
			&tx.Amount, &tx.Currency, &tx.RunningBalance, &tx.CreatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "scan transaction")
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}
