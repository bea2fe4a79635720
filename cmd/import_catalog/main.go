package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"storefront/catalog"
	"storefront/database"
	"storefront/extractor"
	"storefront/importer"
	"storefront/pricing"
)

// maxPrintedFailures сколько причин отказов перечислять в сводке
const maxPrintedFailures = 20

func main() {
	var (
		filePath  = flag.String("file", "", "Path to the extracted products JSON artifact")
		dbPath    = flag.String("db", "./catalog.db", "Path to catalog database")
		imagesDir = flag.String("images", "./uploads/products", "Directory for persisted product images")
		sources   = flag.String("source", "", "Comma-separated directories with extracted images (default: artifact directory)")
		rate      = flag.Float64("rate", 0.58, "Exchange rate: one source currency unit in target currency")
		cents     = flag.Bool("cents", false, "Round prices to two decimals instead of whole units")
		dryRun    = flag.Bool("dry-run", false, "Preview the batch without persisting anything")
		overwrite = flag.Bool("overwrite", false, "Update existing products instead of skipping them")
	)
	flag.Parse()

	if *filePath == "" {
		fmt.Println("Usage: import_catalog -file <extracted_products.json> [-db <database_path>] [-dry-run] [-overwrite]")
		fmt.Println("\nExample:")
		fmt.Println("  import_catalog -file ./extracted_data/extracted_products.json -db ./catalog.db")
		os.Exit(1)
	}

	products, err := extractor.LoadArtifact(*filePath)
	if err != nil {
		log.Fatalf("Failed to load artifact: %v", err)
	}
	if len(products) == 0 {
		log.Fatalf("No products found in artifact %s", *filePath)
	}

	sourceDirs := []string{filepath.Dir(*filePath)}
	if *sources != "" {
		sourceDirs = strings.Split(*sources, ",")
	}

	opts := importer.Options{
		DryRun:     *dryRun,
		Overwrite:  *overwrite,
		Pricing:    pricing.Config{Rate: *rate, WholeUnit: !*cents},
		SourceDirs: sourceDirs,
	}

	// В режиме dry-run хранилище не открывается вовсе
	var store catalog.Store
	if !*dryRun {
		db, err := database.Open(*dbPath, *imagesDir)
		if err != nil {
			log.Fatalf("Failed to open catalog database: %v", err)
		}
		defer db.Close()
		store = db
	}

	result, err := importer.New(store, opts).Run(products)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	printSummary(os.Stdout, result, *rate)
}

func printSummary(w io.Writer, result *importer.Result, rate float64) {
	fmt.Fprintf(w, "\n=== Import Results ===\n")
	fmt.Fprintf(w, "Total records: %d\n", result.Total)
	fmt.Fprintf(w, "Created: %d\n", result.Created)
	fmt.Fprintf(w, "Updated: %d\n", result.Updated)
	fmt.Fprintf(w, "Skipped: %d\n", result.Skipped)
	fmt.Fprintf(w, "Failed: %d\n", result.Failed)
	fmt.Fprintf(w, "Duration: %v\n", result.Duration)
	fmt.Fprintf(w, "Exchange rate used: %v\n", rate)

	fmt.Fprintf(w, "\n=== Category Distribution ===\n")
	type categoryCount struct {
		name  string
		count int
	}
	counts := make([]categoryCount, 0, len(result.CategoryCounts))
	for name, count := range result.CategoryCounts {
		counts = append(counts, categoryCount{name, count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].name < counts[j].name
	})
	for _, c := range counts {
		fmt.Fprintf(w, "  %s: %d products\n", c.name, c.count)
	}

	if result.Failed > 0 {
		reasons := importer.FailureReasons(result.Ledger, maxPrintedFailures)
		// Заголовок "First N" только для усеченного списка
		if result.Failed > len(reasons) {
			fmt.Fprintf(w, "\nFirst %d failures:\n", len(reasons))
		} else {
			fmt.Fprintf(w, "\nErrors:\n")
		}
		for _, reason := range reasons {
			fmt.Fprintf(w, "  - %s\n", reason)
		}
		if rest := result.Failed - len(reasons); rest > 0 {
			fmt.Fprintf(w, "  ... and %d more failures\n", rest)
		}
	}
}
