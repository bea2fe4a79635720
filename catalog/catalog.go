// Package catalog описывает контракт каталога магазина: сущности категорий и
// товаров и интерфейс хранилища, через который пайплайн импорта работает с
// каталогом. Само хранилище реализуется отдельно (см. пакет database).
package catalog

import "errors"

var (
	// ErrNotFound возвращается методами поиска, когда запись отсутствует в каталоге
	ErrNotFound = errors.New("catalog: record not found")

	// ErrConflict возвращается при нарушении уникальности (имя или slug уже заняты)
	ErrConflict = errors.New("catalog: unique constraint violation")
)

// Category категория каталога. Имя уникально; slug выводится из имени и
// также глобально уникален.
type Category struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	IsActive    bool
}

// ProductImage ссылка на сохранённое изображение товара
type ProductImage struct {
	URL string
	Alt string
}

// Product товар каталога. Уникален по SKU, если SKU задан,
// иначе сопоставляется по точному имени.
type Product struct {
	ID               int64
	Name             string
	Slug             string
	Description      string
	ShortDescription string
	Price            float64
	SKU              string
	CategoryID       int64
	Images           []ProductImage
	Stock            int
	Weight           float64
	Status           string
}

// Store интерфейс хранилища каталога, потребляемый импортером.
// Методы поиска возвращают ErrNotFound для отсутствующих записей,
// CreateCategory возвращает ErrConflict при дублировании имени или slug.
type Store interface {
	FindCategoryByName(name string) (*Category, error)
	CreateCategory(c *Category) error

	FindProductBySKU(sku string) (*Product, error)
	FindProductByName(name string) (*Product, error)
	CreateProduct(p *Product) error
	UpdateProduct(id int64, p *Product) error

	// PersistImageBytes сохраняет байты изображения под новым уникальным
	// именем и возвращает путь-ссылку для карточки товара.
	PersistImageBytes(data []byte, ext string) (string, error)
}
