package commands

import (
	"encoding/csv"
	"os"
	"strings"
)

// loadSites reads site URLs from a file: CSV files use the first column
// (header row skipped), anything else is treated as one URL per line with
// "#" comments.
func loadSites(path string) ([]string, error) {
	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		return loadSitesCSV(path)
	}
	return loadSitesText(path)
}

func loadSitesText(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sites []string
	for _, line := range strings.Split(string(data), "\n") {
		site := strings.TrimSpace(line)
		if site == "" || strings.HasPrefix(site, "#") {
			continue
		}
		sites = append(sites, site)
	}
	return sites, nil
}

func loadSitesCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	var sites []string
	for i, row := range rows {
		if i == 0 {
			// Skip header if present
			continue
		}
		if len(row) == 0 {
			continue
		}
		if site := strings.TrimSpace(row[0]); site != "" {
			sites = append(sites, site)
		}
	}
	return sites, nil
}

// dedupeSites removes duplicates while preserving order.
func dedupeSites(sites []string) []string {
	seen := make(map[string]bool, len(sites))
	unique := make([]string, 0, len(sites))
	for _, site := range sites {
		if site == "" || seen[site] {
			continue
		}
		seen[site] = true
		unique = append(unique, site)
	}
	return unique
}
