package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// csvDateFormat renders timestamps as "2006-01-02 15:04:05".
const csvDateFormat = "2006-01-02 15:04:05"

// WriteCSV writes the inventory records as a CSV file with the header
// Product/Brand, Count, Date. Records are written in the order assembled:
// branded rows before generic rows.
func WriteCSV(path string, records []InventoryRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Product/Brand", "Count", "Date"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.Identity,
			strconv.Itoa(rec.Count),
			rec.Timestamp.Format(csvDateFormat),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", rec.Identity, err)
		}
	}

	w.Flush()
	return w.Error()
}
