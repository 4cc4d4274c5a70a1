// Package export renders ranked output as CSV for download. The ranking core
// owns no file formats; this is a presentation adapter.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/tripcompass/tripcompass/internal/models"
)

// WriteCandidates streams scored candidates as CSV, highest score first as
// given. Optional fields render empty.
func WriteCandidates(w io.Writer, candidates []models.ScoredCandidate) error {
	writer := csv.NewWriter(w)

	header := []string{
		"place_id", "name", "latitude", "longitude",
		"category", "rating", "review_count", "price_level", "score",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, candidate := range candidates {
		priceLevel := ""
		if candidate.PriceLevel != nil {
			priceLevel = strconv.Itoa(*candidate.PriceLevel)
		}

		record := []string{
			candidate.PlaceID,
			candidate.Name,
			strconv.FormatFloat(candidate.Location.Latitude, 'f', -1, 64),
			strconv.FormatFloat(candidate.Location.Longitude, 'f', -1, 64),
			candidate.CategoryTag,
			strconv.FormatFloat(candidate.Rating, 'f', -1, 64),
			strconv.Itoa(candidate.ReviewCount),
			priceLevel,
			strconv.FormatFloat(candidate.Score, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}

	return nil
}

// WriteTrendingLocations streams a trend segment as CSV.
func WriteTrendingLocations(w io.Writer, locations []models.TrendingLocation) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"location", "trend_score", "address", "area_code"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, location := range locations {
		address, areaCode := "", ""
		if location.Details != nil {
			address = location.Details.Address
			areaCode = location.Details.AreaCode
		}

		record := []string{
			location.Location,
			strconv.FormatFloat(location.Score, 'f', 1, 64),
			address,
			areaCode,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}

	return nil
}
