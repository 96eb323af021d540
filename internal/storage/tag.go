package storage

import "fmt"

var tagPrefixes = map[string]string{
	"Laptop":          "LAP",
	"Monitor":         "MON",
	"Docking Station": "DOC",
	"Peripheral":      "PER",
	"Other":           "OTH",
}

func tagPrefix(category string) string {
	if p, ok := tagPrefixes[category]; ok {
		return p
	}
	return "OTH"
}

// formatTag renders an asset tag like EQ-LAP-006. n is the count of assets
// in the same category within the session, including the one being tagged.
func formatTag(category string, n int64) string {
	return fmt.Sprintf("EQ-%s-%03d", tagPrefix(category), n)
}
