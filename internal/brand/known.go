package brand

import (
	"bufio"
	"os"
	"strings"
	"unicode/utf8"
)

// LoadKnownBrands reads a known-brands list: one brand name per line, blank
// lines and lines starting with '#' ignored. A missing file is not an error;
// the feature silently degrades to generic matching everywhere. A bad line
// is skipped without aborting the rest of the list.
func LoadKnownBrands(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var brands []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !utf8.ValidString(line) {
			continue
		}
		brands = append(brands, line)
	}
	if err := scanner.Err(); err != nil {
		// Return what was loaded; a truncated list still works
		return brands, err
	}

	return brands, nil
}
