package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/models"
)

// Lookup returns the record with the given key.
func Lookup(records []models.CommandRecord, key string) (models.CommandRecord, bool) {
	for _, r := range records {
		if r.Key == key {
			return r, true
		}
	}
	return models.CommandRecord{}, false
}

// Suggest returns up to limit keys closest to key by edit distance,
// compared case-insensitively. Ties sort by key.
func Suggest(records []models.CommandRecord, key string, limit int) []string {
	type candidate struct {
		key  string
		dist int
	}
	target := strings.ToLower(key)
	cands := make([]candidate, 0, len(records))
	for _, r := range records {
		cands = append(cands, candidate{
			key:  r.Key,
			dist: levenshtein.ComputeDistance(target, strings.ToLower(r.Key)),
		})
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].dist != cands[j].dist {
			return cands[i].dist < cands[j].dist
		}
		return cands[i].key < cands[j].key
	})

	if limit < 0 {
		limit = 0
	}
	if limit > len(cands) {
		limit = len(cands)
	}
	out := make([]string, 0, limit)
	for _, c := range cands[:limit] {
		out = append(out, c.key)
	}
	return out
}
