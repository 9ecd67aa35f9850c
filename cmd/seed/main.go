// seed puebla la base PostgreSQL con datos de ejemplo: un operador admin y
// el catálogo de muestra (diez productos con sus códigos de barras).
//
// Uso: go run ./cmd/seed
// Lee la configuración de conexión igual que la API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/will-aam/stock/internal/domain"
	"github.com/will-aam/stock/internal/domain/entity"
	"github.com/will-aam/stock/internal/infrastructure/postgres"
	"github.com/will-aam/stock/pkg/config"
)

type seedProduct struct {
	code        string
	description string
	balance     int
	barcode     string
}

var sample = []seedProduct{
	{"113639", "AGUA H2O LIMONETO 500ML", 50, "7892840812850"},
	{"113640", "REFRIGERANTE COLA 350ML", 30, "7892840812851"},
	{"113641", "SUCO LARANJA 1L", 24, "7892840812852"},
	{"113642", "BISCOITO CHOCOLATE 200G", 48, "7892840812853"},
	{"113643", "LEITE INTEGRAL 1L", 60, "7892840812854"},
	{"113644", "CAFE TORRADO 500G", 36, "7892840812855"},
	{"113645", "ACUCAR CRISTAL 1KG", 40, "7892840812856"},
	{"113646", "ARROZ BRANCO 5KG", 20, "7892840812857"},
	{"113647", "FEIJAO PRETO 1KG", 32, "7892840812858"},
	{"113648", "MACARRAO ESPAGUETE 500G", 44, "7892840812859"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	now := time.Now()

	// Operador admin (idempotente: se ignora si ya existe)
	users := postgres.NewUserRepository(pool)
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		fail("hash de contraseña: %v", err)
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		Email:        "admin@sistema.com",
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	switch err := users.Create(ctx, admin); err {
	case nil:
		fmt.Println("usuario admin@sistema.com creado")
	case domain.ErrEmailAlreadyExists:
		fmt.Println("usuario admin@sistema.com ya existe")
	default:
		fail("crear usuario: %v", err)
	}

	// Catálogo de muestra, omitiendo códigos ya registrados.
	catalog := postgres.NewCatalogRepository(pool)
	var products []*entity.Product
	var barcodes []*entity.BarcodeEntry
	for _, sp := range sample {
		existing, err := catalog.ExistingBarcodes(ctx, []string{sp.barcode})
		if err != nil {
			fail("consultar catálogo: %v", err)
		}
		if _, ok := existing[sp.barcode]; ok {
			continue
		}
		p := &entity.Product{
			ID:           uuid.New().String(),
			Code:         sp.code,
			Description:  sp.description,
			StockBalance: sp.balance,
			CreatedAt:    now,
		}
		products = append(products, p)
		barcodes = append(barcodes, &entity.BarcodeEntry{Barcode: sp.barcode, ProductID: p.ID})
	}
	if len(products) == 0 {
		fmt.Println("catálogo de muestra ya cargado")
		return
	}
	if err := catalog.InsertBatch(ctx, products, barcodes); err != nil {
		fail("insertar catálogo: %v", err)
	}
	fmt.Printf("%d productos de muestra insertados\n", len(products))
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
