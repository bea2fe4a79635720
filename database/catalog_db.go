// Package database реализует хранилище каталога (catalog.Store) поверх
// SQLite: таблицы категорий, товаров и изображений плюс дисковое хранилище
// файлов изображений.
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-sqlite3"

	"storefront/catalog"
)

// CatalogDB обертка для работы с базой каталога
type CatalogDB struct {
	conn      *sql.DB
	imagesDir string
}

// Open открывает базу каталога и выполняет миграции. Соединение открывается
// один раз на прогон и закрывается в конце (Close).
func Open(dbPath, imagesDir string) (*CatalogDB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	if err := os.MkdirAll(imagesDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", dbPath, err)
	}

	if err := createCatalogTables(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return &CatalogDB{conn: conn, imagesDir: imagesDir}, nil
}

// Close закрывает соединение с базой
func (db *CatalogDB) Close() error {
	return db.conn.Close()
}

// GetConnection возвращает низкоуровневое соединение (для тестов и миграций)
func (db *CatalogDB) GetConnection() *sql.DB {
	return db.conn
}

// FindCategoryByName ищет категорию по точному имени
func (db *CatalogDB) FindCategoryByName(name string) (*catalog.Category, error) {
	var c catalog.Category
	var isActive int
	err := db.conn.QueryRow(
		"SELECT id, name, slug, description, is_active FROM categories WHERE name = ?",
		name,
	).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &isActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("category %q: %w", name, catalog.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category %q: %w", name, err)
	}
	c.IsActive = isActive != 0
	return &c, nil
}

// CreateCategory создает категорию, выводя уникальный slug из имени.
// Нарушение уникальности имени или slug возвращается как catalog.ErrConflict.
func (db *CatalogDB) CreateCategory(c *catalog.Category) error {
	slug, err := uniqueSlug(db.conn, "categories", c.Name)
	if err != nil {
		return err
	}

	res, err := db.conn.Exec(
		"INSERT INTO categories (name, slug, description, is_active) VALUES (?, ?, ?, ?)",
		c.Name, slug, c.Description, boolToInt(c.IsActive),
	)
	if err != nil {
		return wrapConstraint(fmt.Errorf("failed to create category %q: %w", c.Name, err), err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get category id: %w", err)
	}
	c.ID = id
	c.Slug = slug
	return nil
}

// FindProductBySKU ищет товар по SKU
func (db *CatalogDB) FindProductBySKU(sku string) (*catalog.Product, error) {
	return db.findProduct("sku = ?", sku)
}

// FindProductByName ищет товар по точному имени
func (db *CatalogDB) FindProductByName(name string) (*catalog.Product, error) {
	return db.findProduct("name = ?", name)
}

func (db *CatalogDB) findProduct(where string, arg interface{}) (*catalog.Product, error) {
	var p catalog.Product
	var sku sql.NullString
	query := `SELECT id, name, slug, description, short_description, price, sku,
		category_id, stock, weight, status FROM products WHERE ` + where
	err := db.conn.QueryRow(query, arg).Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.ShortDescription,
		&p.Price, &sku, &p.CategoryID, &p.Stock, &p.Weight, &p.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product: %w", catalog.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	p.SKU = sku.String

	images, err := db.loadImages(p.ID)
	if err != nil {
		return nil, err
	}
	p.Images = images
	return &p, nil
}

func (db *CatalogDB) loadImages(productID int64) ([]catalog.ProductImage, error) {
	rows, err := db.conn.Query(
		"SELECT url, alt FROM product_images WHERE product_id = ? ORDER BY position",
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load product images: %w", err)
	}
	defer rows.Close()

	var images []catalog.ProductImage
	for rows.Next() {
		var img catalog.ProductImage
		if err := rows.Scan(&img.URL, &img.Alt); err != nil {
			return nil, fmt.Errorf("failed to scan product image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// CreateProduct создает товар вместе с его изображениями в одной транзакции
func (db *CatalogDB) CreateProduct(p *catalog.Product) error {
	slug, err := uniqueSlug(db.conn, "products", p.Name)
	if err != nil {
		return err
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO products (name, slug, description, short_description, price,
			sku, category_id, stock, weight, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, slug, p.Description, p.ShortDescription, p.Price,
		nullableString(p.SKU), p.CategoryID, p.Stock, p.Weight, p.Status,
	)
	if err != nil {
		return wrapConstraint(fmt.Errorf("failed to create product %q: %w", p.Name, err), err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get product id: %w", err)
	}

	if err := insertImages(tx, id, p.Images); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit product: %w", err)
	}
	p.ID = id
	p.Slug = slug
	return nil
}

// UpdateProduct применяет все поля к существующей записи и заменяет набор
// изображений
func (db *CatalogDB) UpdateProduct(id int64, p *catalog.Product) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`UPDATE products SET name = ?, description = ?, short_description = ?,
			price = ?, sku = ?, category_id = ?, stock = ?, weight = ?, status = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		p.Name, p.Description, p.ShortDescription, p.Price,
		nullableString(p.SKU), p.CategoryID, p.Stock, p.Weight, p.Status, id,
	)
	if err != nil {
		return wrapConstraint(fmt.Errorf("failed to update product %d: %w", id, err), err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("product %d: %w", id, catalog.ErrNotFound)
	}

	if len(p.Images) > 0 {
		if _, err := tx.Exec("DELETE FROM product_images WHERE product_id = ?", id); err != nil {
			return fmt.Errorf("failed to clear product images: %w", err)
		}
		if err := insertImages(tx, id, p.Images); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit product update: %w", err)
	}
	p.ID = id
	return nil
}

func insertImages(tx *sql.Tx, productID int64, images []catalog.ProductImage) error {
	for i, img := range images {
		if _, err := tx.Exec(
			"INSERT INTO product_images (product_id, url, alt, position) VALUES (?, ?, ?, ?)",
			productID, img.URL, img.Alt, i,
		); err != nil {
			return fmt.Errorf("failed to insert product image: %w", err)
		}
	}
	return nil
}

// wrapConstraint переводит ошибку нарушения уникальности SQLite в
// catalog.ErrConflict, сохраняя исходный контекст
func wrapConstraint(wrapped, raw error) error {
	var sqliteErr sqlite3.Error
	if errors.As(raw, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%v: %w", wrapped, catalog.ErrConflict)
	}
	return wrapped
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
