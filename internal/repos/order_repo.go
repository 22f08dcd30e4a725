package repos

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"shopfront/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

type orderRow struct {
	ID            int64          `db:"id"`
	Created       string         `db:"created"`
	CustomerName  sql.NullString `db:"customer_name"`
	CustomerEmail sql.NullString `db:"customer_email"`
	Address       sql.NullString `db:"address"`
	ItemsJSON     sql.NullString `db:"items_json"`
	Total         float64        `db:"total"`
}

func (r orderRow) toDomain() domain.Order {
	o := domain.Order{
		ID:            r.ID,
		Created:       r.Created,
		CustomerName:  r.CustomerName.String,
		CustomerEmail: r.CustomerEmail.String,
		Address:       r.Address.String,
		Total:         r.Total,
		Items:         []domain.OrderItem{},
	}
	// A missing or corrupt blob reads as an empty item list, never an error.
	if r.ItemsJSON.Valid && r.ItemsJSON.String != "" {
		var items []domain.OrderItem
		if err := json.Unmarshal([]byte(r.ItemsJSON.String), &items); err == nil && items != nil {
			o.Items = items
		}
	}
	return o
}

// Insert appends one order row and returns the assigned id. The created
// timestamp is set here, UTC RFC 3339.
func (r *OrderRepo) Insert(o domain.Order) (int64, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return 0, err
	}
	created := time.Now().UTC().Format(time.RFC3339)
	res, err := r.db.Exec(`
	  INSERT INTO orders(created, customer_name, customer_email, address, items_json, total)
	  VALUES(?, ?, ?, ?, ?, ?)
	`, created, o.CustomerName, o.CustomerEmail, o.Address, string(items), o.Total)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *OrderRepo) GetByID(id int64) (domain.Order, error) {
	var row orderRow
	err := r.db.Get(&row, `
	  SELECT id, created, customer_name, customer_email, address, items_json, total
	  FROM orders WHERE id = ?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, err
	}
	return row.toDomain(), nil
}

// ListRecent returns up to limit orders, newest first.
func (r *OrderRepo) ListRecent(limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []orderRow
	err := r.db.Select(&rows, `
	  SELECT id, created, customer_name, customer_email, address, items_json, total
	  FROM orders ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
