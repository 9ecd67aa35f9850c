package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/will-aam/stock/internal/domain"
	"github.com/will-aam/stock/internal/domain/entity"
	"github.com/will-aam/stock/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo adaptador del puerto CatalogRepository sobre PostgreSQL.
// El índice de códigos de barras es la tabla bar_codes con PK sobre el
// código, de modo que la unicidad también la respalda la base.
type CatalogRepo struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository construye el adaptador.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepo {
	return &CatalogRepo{pool: pool}
}

// FindByBarcode resuelve un código de barras vía el índice; nil si no existe.
func (r *CatalogRepo) FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	query := `
		SELECT p.id, p.code, p.description, p.stock_balance, p.created_at
		FROM bar_codes b
		JOIN products p ON p.id = b.product_id
		WHERE b.barcode = $1`
	var p entity.Product
	err := r.pool.QueryRow(ctx, query, barcode).Scan(
		&p.ID, &p.Code, &p.Description, &p.StockBalance, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar por código de barras: %w", err)
	}
	return &p, nil
}

// ExistingBarcodes devuelve cuáles de los códigos dados ya están registrados.
func (r *CatalogRepo) ExistingBarcodes(ctx context.Context, barcodes []string) (map[string]struct{}, error) {
	out := make(map[string]struct{})
	if len(barcodes) == 0 {
		return out, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT barcode FROM bar_codes WHERE barcode = ANY($1)`, barcodes)
	if err != nil {
		return nil, fmt.Errorf("consultar códigos existentes: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var b string
		if err := rows.Scan(&b); err != nil {
			return nil, fmt.Errorf("scan código: %w", err)
		}
		out[b] = struct{}{}
	}
	return out, rows.Err()
}

// InsertBatch confirma el lote dentro de una transacción: productos y
// códigos entran todos o ninguno. Una colisión de código (carrera entre
// importaciones) se reporta como domain.ErrDuplicate.
func (r *CatalogRepo) InsertBatch(ctx context.Context, products []*entity.Product, barcodes []*entity.BarcodeEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(
			`INSERT INTO products (id, code, description, stock_balance, created_at) VALUES ($1, $2, $3, $4, $5)`,
			p.ID, p.Code, p.Description, p.StockBalance, p.CreatedAt,
		)
	}
	for _, b := range barcodes {
		batch.Queue(
			`INSERT INTO bar_codes (barcode, product_id) VALUES ($1, $2)`,
			b.Barcode, b.ProductID,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insertar lote: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("cerrar batch: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ListProducts lista productos en orden de inserción (created_at, id).
func (r *CatalogRepo) ListProducts(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, code, description, stock_balance, created_at
		FROM products
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Description, &p.StockBalance, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
