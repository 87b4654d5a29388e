// Package report renders the final inventory: per-identity counts grouped
// for review, CSV and metadata exports, and annotated frames.
package report

import (
	"sort"
	"strings"
	"time"

	"shelfscan/internal/detect"
)

// InventoryRecord is one line of the final inventory report.
type InventoryRecord struct {
	Identity  string
	Count     int
	Timestamp time.Time
}

// Assemble renders the count map as inventory records: identities with a
// recognized brand suffix first, then generic identities, each group sorted
// lexicographically. The grouping is presentation only; every identity
// appears exactly once.
func Assemble(counts detect.CountMap, knownBrandMarkers []string) []InventoryRecord {
	return assembleAt(counts, knownBrandMarkers, time.Now())
}

func assembleAt(counts detect.CountMap, knownBrandMarkers []string, now time.Time) []InventoryRecord {
	var branded, generic []string
	for identity := range counts {
		if isBranded(identity, knownBrandMarkers) {
			branded = append(branded, identity)
		} else {
			generic = append(generic, identity)
		}
	}
	sort.Strings(branded)
	sort.Strings(generic)

	records := make([]InventoryRecord, 0, len(counts))
	for _, identity := range append(branded, generic...) {
		records = append(records, InventoryRecord{
			Identity:  identity,
			Count:     counts[identity],
			Timestamp: now,
		})
	}
	return records
}

// isBranded reports whether an identity carries a brand suffix matching one
// of the known-brand markers, case-insensitively.
func isBranded(identity string, markers []string) bool {
	idx := strings.LastIndex(identity, detect.IdentitySeparator)
	if idx < 0 {
		return false
	}
	suffix := identity[idx+len(detect.IdentitySeparator):]
	for _, marker := range markers {
		if strings.EqualFold(suffix, marker) {
			return true
		}
	}
	return false
}
