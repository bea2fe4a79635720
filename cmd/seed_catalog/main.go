// seed_catalog наполняет каталог демонстрационными товарами для разработки
// витрины и админки без реального прайс-листа.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/brianvoe/gofakeit/v6"

	"storefront/catalog"
	"storefront/categorizer"
	"storefront/database"
)

func main() {
	var (
		dbPath    = flag.String("db", "./catalog.db", "Path to catalog database")
		imagesDir = flag.String("images", "./uploads/products", "Directory for persisted product images")
		count     = flag.Int("count", 50, "Number of demo products to create")
		seed      = flag.Int64("seed", 0, "Random seed (0 = random)")
	)
	flag.Parse()

	gofakeit.Seed(*seed)

	db, err := database.Open(*dbPath, *imagesDir)
	if err != nil {
		log.Fatalf("Failed to open catalog database: %v", err)
	}
	defer db.Close()

	categories := []categorizer.Category{
		categorizer.CategoryCondoms,
		categorizer.CategoryLubricants,
		categorizer.CategoryFemaleToys,
		categorizer.CategoryMaleToys,
		categorizer.CategoryLingerie,
		categorizer.CategoryAccessories,
	}

	categoryIDs := make([]int64, 0, len(categories))
	for _, c := range categories {
		id, err := ensureCategory(db, c)
		if err != nil {
			log.Fatalf("Failed to ensure category %q: %v", c.Name, err)
		}
		categoryIDs = append(categoryIDs, id)
	}

	created := 0
	for i := 0; i < *count; i++ {
		product := &catalog.Product{
			Name:             fmt.Sprintf("%s %s", gofakeit.ProductName(), gofakeit.LetterN(4)),
			Description:      gofakeit.Sentence(12),
			ShortDescription: gofakeit.Sentence(5),
			Price:            float64(gofakeit.Number(5, 400)),
			SKU:              gofakeit.UUID(),
			CategoryID:       categoryIDs[gofakeit.Number(0, len(categoryIDs)-1)],
			Stock:            gofakeit.Number(0, 200),
			Weight:           gofakeit.Float64Range(0.05, 5),
			Status:           "active",
		}
		if err := db.CreateProduct(product); err != nil {
			log.Printf("Warning: could not create demo product: %v", err)
			continue
		}
		created++
	}

	fmt.Printf("Seeded %d demo products across %d categories\n", created, len(categoryIDs))
}

func ensureCategory(db *database.CatalogDB, c categorizer.Category) (int64, error) {
	existing, err := db.FindCategoryByName(c.Name)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, catalog.ErrNotFound) {
		return 0, err
	}
	created := &catalog.Category{Name: c.Name, Description: c.LocalizedName, IsActive: true}
	if err := db.CreateCategory(created); err != nil {
		return 0, err
	}
	return created.ID, nil
}
