package database

import (
	"database/sql"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"
)

const (
	// maxSlugAttempts предел попыток подобрать свободный slug
	maxSlugAttempts = 100
	// slugSuffixLength длина случайного суффикса
	slugSuffixLength = 7
	// defaultSlug запасной slug для имен без латинских символов
	defaultSlug = "default-category"
)

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify выводит URL-безопасный идентификатор из отображаемого имени
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = slugCleaner.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return defaultSlug
	}
	return slug
}

// uniqueSlug подбирает глобально уникальный slug для таблицы table.
// При коллизии к базовому slug добавляется случайный суффикс; после
// maxSlugAttempts попыток — временная метка как последнее средство.
func uniqueSlug(conn *sql.DB, table, name string) (string, error) {
	base := Slugify(name)
	slug := base

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		taken, err := slugTaken(conn, table, slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%s", base, randomSuffix(slugSuffixLength))
	}

	return fmt.Sprintf("%s-%d", base, time.Now().UnixMilli()), nil
}

func slugTaken(conn *sql.DB, table, slug string) (bool, error) {
	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE slug = ?", table)
	if err := conn.QueryRow(query, slug).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check slug %q: %w", slug, err)
	}
	return count > 0, nil
}

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomSuffix(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}
