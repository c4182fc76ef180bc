package network

import "math/rand/v2"

// YearCount is one point of the synthetic per-year paper count series.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// PatentCitation is one point of the synthetic patent citation series.
type PatentCitation struct {
	PatentCount int `json:"patentCount"`
	PaperCount  int `json:"paperCount"`
}

// PaperCounts returns a randomized demonstration series of paper counts for
// the years 2014 through 2023. Counts fall in [5, 35).
func PaperCounts() []YearCount {
	series := make([]YearCount, 0, 10)
	for year := 2014; year < 2024; year++ {
		series = append(series, YearCount{
			Year:  year,
			Count: 5 + rand.IntN(30),
		})
	}
	return series
}

// PatentCitations returns a randomized demonstration series relating patent
// counts 0 through 14 to paper counts in [5, 55).
func PatentCitations() []PatentCitation {
	series := make([]PatentCitation, 0, 15)
	for patents := 0; patents < 15; patents++ {
		series = append(series, PatentCitation{
			PatentCount: patents,
			PaperCount:  5 + rand.IntN(50),
		})
	}
	return series
}
