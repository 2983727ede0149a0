// Package export renders rate tables into XLSX rate cards for the sales team.
package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/servdubai/quote-service/internal/catalog"
)

// header row for each catalog sheet
var rateCardColumns = []string{"Selection", "Base Price (AED)", "Price Unit", "Range Min", "Range Max", "Bulk Eligible", "Component", "Component Price (AED)"}

// WriteRateCard writes one sheet per catalog namespace, one row per rate
// entry, with component add-ons expanded into follow-on rows.
func WriteRateCard(w io.Writer, names []string) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close workbook")
		}
	}()

	for i, name := range names {
		cat, ok := catalog.ByName(name)
		if !ok {
			return fmt.Errorf("unknown catalog: %s", name)
		}

		sheet := cat.Name()
		if i == 0 {
			f.SetSheetName("Sheet1", sheet)
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("create sheet %s: %w", sheet, err)
			}
		}

		if err := writeSheet(f, sheet, cat); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, cat *catalog.Catalog) error {
	for col, title := range rateCardColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}

	row := 2
	for _, key := range cat.Keys() {
		entry, err := cat.Lookup(key)
		if err != nil {
			return err
		}

		values := []interface{}{
			key,
			entry.BasePrice.InexactFloat64(),
			string(entry.PriceUnit),
			entry.PriceRange.Min.InexactFloat64(),
			entry.PriceRange.Max.InexactFloat64(),
			entry.BulkEligible,
		}
		if err := setRow(f, sheet, row, values); err != nil {
			return err
		}
		row++

		// Components expand into their own rows under the parent entry.
		componentKeys := make([]string, 0, len(entry.Components))
		for k := range entry.Components {
			componentKeys = append(componentKeys, k)
		}
		sort.Strings(componentKeys)

		for _, componentKey := range componentKeys {
			values := []interface{}{
				key, nil, nil, nil, nil, nil,
				componentKey,
				entry.Components[componentKey].InexactFloat64(),
			}
			if err := setRow(f, sheet, row, values); err != nil {
				return err
			}
			row++
		}
	}

	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, value := range values {
		if value == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
