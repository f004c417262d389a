// Package winery holds facts about the winery itself.
package winery

import "time"

// FoundationYear is the year the winery was founded.
const FoundationYear = 1920

// Age returns the number of full calendar years between FoundationYear and now.
func Age(now time.Time) int {
	return now.Year() - FoundationYear
}
