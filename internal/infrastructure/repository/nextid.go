package repository

import "strconv"

// nextID computes the next record ID: one past the highest numeric ID in the
// set, or "1" for an empty store. Non-numeric IDs (corrupted or hand-edited
// records) are ignored for the max computation and never reused.
func nextID(ids []string) string {
	maxID := 0
	for _, id := range ids {
		n, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		if n > maxID {
			maxID = n
		}
	}
	return strconv.Itoa(maxID + 1)
}
