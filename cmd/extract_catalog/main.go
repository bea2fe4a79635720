package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"storefront/extractor"
)

func main() {
	var (
		filePath = flag.String("file", "", "Path to the price list workbook (.xlsx)")
		outDir   = flag.String("out", "./extracted_data", "Output directory for images and JSON artifact")
	)
	flag.Parse()

	if *filePath == "" {
		fmt.Println("Usage: extract_catalog -file <path_to_workbook> [-out <output_directory>]")
		fmt.Println("\nExample:")
		fmt.Println("  extract_catalog -file ./pricelist.xlsx -out ./extracted_data")
		os.Exit(1)
	}

	if _, err := os.Stat(*filePath); err != nil {
		log.Fatalf("File not found: %s", *filePath)
	}

	result, err := extractor.ExtractWorkbook(*filePath, *outDir)
	if err != nil {
		log.Fatalf("Extraction failed: %v", err)
	}

	if err := result.WriteArtifact(*outDir); err != nil {
		log.Fatalf("Failed to write artifact: %v", err)
	}

	fmt.Printf("\n=== Extraction Results ===\n")
	fmt.Printf("Total products: %d\n", result.Summary.TotalProducts)
	fmt.Printf("Total images: %d\n", result.Summary.TotalImages)
	fmt.Printf("Products with images: %d\n", result.Summary.ProductsWithImages)
	fmt.Printf("Extraction date: %s\n", result.Summary.ExtractionDate)
	fmt.Printf("Output directory: %s\n", *outDir)
}
