package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"shelfscan/internal/detect"
)

func TestAssembleBrandedBeforeGeneric(t *testing.T) {
	counts := detect.CountMap{
		"bottle_Susante": 2,
		"can":            5,
		"bottle_Levite":  1,
	}
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	records := assembleAt(counts, []string{"Susante", "Levite"}, now)
	require.Len(t, records, 3)

	require.Equal(t, "bottle_Levite", records[0].Identity)
	require.Equal(t, "bottle_Susante", records[1].Identity)
	require.Equal(t, "can", records[2].Identity)
	require.Equal(t, 1, records[0].Count)
	require.Equal(t, 2, records[1].Count)
	require.Equal(t, 5, records[2].Count)
	for _, rec := range records {
		require.Equal(t, now, rec.Timestamp)
	}
}

func TestAssembleUnknownBrandTreatedAsGeneric(t *testing.T) {
	counts := detect.CountMap{
		"bottle_Coramina": 3,
		"bottle_Susante":  1,
		"bowl":            2,
	}
	records := assembleAt(counts, []string{"Susante"}, time.Now())
	require.Len(t, records, 3)

	// Only the recognized brand suffix moves a row into the branded group.
	require.Equal(t, "bottle_Susante", records[0].Identity)
	require.Equal(t, "bottle_Coramina", records[1].Identity)
	require.Equal(t, "bowl", records[2].Identity)
}

func TestAssembleMarkerMatchIsCaseInsensitive(t *testing.T) {
	counts := detect.CountMap{"bottle_Levite": 1, "cup": 1}
	records := assembleAt(counts, []string{"LEVITE"}, time.Now())
	require.Equal(t, "bottle_Levite", records[0].Identity)
}

func TestAssembleEmpty(t *testing.T) {
	records := Assemble(detect.CountMap{}, nil)
	require.Empty(t, records)
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inventario.csv")

	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	records := []InventoryRecord{
		{Identity: "bottle_Levite", Count: 1, Timestamp: now},
		{Identity: "can", Count: 5, Timestamp: now},
	}
	require.NoError(t, WriteCSV(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "Product/Brand,Count,Date", lines[0])
	require.Equal(t, "bottle_Levite,1,2024-03-15 10:30:00", lines[1])
	require.Equal(t, "can,5,2024-03-15 10:30:00", lines[2])
}

func TestMetadataTotals(t *testing.T) {
	counts := detect.CountMap{
		"bottle_Susante": 2,
		"can":            5,
		"bottle_Levite":  1,
	}
	meta := NewMetadata(counts, 12, []string{"frame_0001_t1.00s_detected.jpg"})

	require.Equal(t, 12, meta.TotalFrames)
	require.Equal(t, 3, meta.TotalIdentities)
	require.Equal(t, 8, meta.TotalDetections)
	require.Len(t, meta.AnnotatedImages, 1)

	_, err := time.Parse(time.RFC3339, meta.Date)
	require.NoError(t, err)
}

func TestMetadataNilAnnotatedImages(t *testing.T) {
	meta := NewMetadata(detect.CountMap{}, 0, nil)
	require.NotNil(t, meta.AnnotatedImages)

	data, err := json.Marshal(meta)
	require.NoError(t, err)
	require.Contains(t, string(data), `"annotated_images":[]`)
}

func TestWriteMetadataRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metadata.json")

	meta := NewMetadata(detect.CountMap{"bottle": 2}, 4, nil)
	require.NoError(t, WriteMetadata(path, meta))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Metadata
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, meta.TotalDetections, got.TotalDetections)
	require.Equal(t, meta.Counts, got.Counts)
}

func TestAnnotatedName(t *testing.T) {
	require.Equal(t, "frame_0001_t1.00s_detected.jpg",
		AnnotatedName("/tmp/run/frames/frame_0001_t1.00s.jpg"))
	require.Equal(t, "shelf_detected.jpg", AnnotatedName("shelf.png"))
}
