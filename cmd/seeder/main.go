// Command seeder loads the scraped restaurant CSV into the SQLite store.
//
// Expected header: Name,Address,Latitude,Longitude,Rating,OpeningHours,Tags,PriceRange,Img
// Rows without a name are skipped; numeric-looking fields are stored raw and
// left for the matching core to parse defensively.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"foodatlas/internal/model"
	"foodatlas/internal/repository"
)

func main() {
	csvPath := flag.String("csv", "restaurants.csv", "path to the restaurant CSV export")
	dbPath := flag.String("db", "foody_data.sqlite", "path to the SQLite database")
	flag.Parse()

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("Failed to open CSV: %v", err)
	}
	defer f.Close()

	repo, err := repository.NewSQLiteRepository(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	items, skipped, err := readRestaurants(f)
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	inserted, err := repo.InsertMany(ctx, items)
	if err != nil {
		log.Fatalf("Failed to insert rows: %v", err)
	}

	total, _ := repo.Count(ctx)
	log.Printf("✅ Inserted %d restaurants (%d rows skipped), %d total in store", inserted, skipped, total)
}

// readRestaurants parses the CSV, mapping columns by header name so column
// order in the export does not matter.
func readRestaurants(r io.Reader) ([]model.Restaurant, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, 0, err
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var items []model.Restaurant
	skipped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		name := field(row, "name")
		if name == "" {
			skipped++
			continue
		}

		items = append(items, model.Restaurant{
			Name:         name,
			Address:      field(row, "address"),
			Latitude:     field(row, "latitude"),
			Longitude:    field(row, "longitude"),
			Rating:       field(row, "rating"),
			OpeningHours: field(row, "openinghours"),
			Tags:         field(row, "tags"),
			PriceRange:   field(row, "pricerange"),
			ImagePath:    field(row, "img"),
		})
	}
	return items, skipped, nil
}
