package network

import (
	"errors"
	"fmt"
	"sort"

	"github.com/citenet/backend/pkg/table"
)

// Citation table columns.
const (
	colCitingPaper = "citing_paperid"
	colCitedPaper  = "cited_paperid"
	colCitingYear  = "year"
	colCitedYear   = "ref_year"
)

// Retained citation records are limited to this citing-year window.
const (
	minCitingYear = 2020
	maxCitingYear = 2025
)

// publishYearUnknown marks papers whose year cannot be resolved from any
// retained record.
const publishYearUnknown = "Unknown"

// CitationSchema describes the columns the citation table must provide.
var CitationSchema = table.Schema{
	{Name: colCitingPaper, Type: table.ColumnTypeString},
	{Name: colCitedPaper, Type: table.ColumnTypeString},
	{Name: colCitingYear, Type: table.ColumnTypeInt},
	{Name: colCitedYear, Type: table.ColumnTypeInt},
}

type citationRecord struct {
	citing     string
	cited      string
	citingYear int
	citedYear  int
}

// BuildCitationNetwork loads the citation table at path and derives paper
// nodes and aggregated citation edges from it. Failures are reported inside
// the Result, never returned as an error.
func BuildCitationNetwork(path string) Result {
	records, err := loadCitationRecords(path)
	if err != nil {
		return citationError(err)
	}

	nodes, links := citationGraph(records)

	res := Result{
		Nodes: make([]any, 0, len(nodes)),
		Links: make([]any, 0, len(links)),
	}
	for _, node := range nodes {
		res.Nodes = append(res.Nodes, node)
	}
	for _, link := range links {
		res.Links = append(res.Links, link)
	}
	return res.normalized()
}

func citationError(err error) Result {
	var notFound *table.NotFoundError
	if errors.As(err, &notFound) {
		return errorResult(fmt.Sprintf(
			"The CSV file for the citation network could not be found. Please check the path: %s",
			notFound.Path,
		))
	}
	return errorResult(fmt.Sprintf("Data processing failed: %v", err))
}

// loadCitationRecords loads the citation table and keeps only complete rows
// whose citing year falls inside the retained window.
func loadCitationRecords(path string) ([]citationRecord, error) {
	rows, err := table.Load(path, CitationSchema)
	if err != nil {
		return nil, err
	}

	records := make([]citationRecord, 0, len(rows))
	for _, row := range rows {
		citing := row[colCitingPaper]
		cited := row[colCitedPaper]
		citingYear := row[colCitingYear]
		citedYear := row[colCitedYear]
		if citing.IsNull() || cited.IsNull() || citingYear.IsNull() || citedYear.IsNull() {
			continue
		}
		if citingYear.Int() < minCitingYear || citingYear.Int() > maxCitingYear {
			continue
		}

		records = append(records, citationRecord{
			citing:     citing.Text(),
			cited:      cited.Text(),
			citingYear: citingYear.Int(),
			citedYear:  citedYear.Int(),
		})
	}
	return records, nil
}

// citationGraph derives the node and edge lists from the retained records.
// Nodes follow first-seen order over the citing column and then the cited
// column; edges follow sorted (cited, citing) key order.
func citationGraph(records []citationRecord) ([]PaperNode, []CitationLink) {
	inGraph := make(map[string]bool)
	var order []string
	for _, rec := range records {
		if !inGraph[rec.citing] {
			inGraph[rec.citing] = true
			order = append(order, rec.citing)
		}
	}
	for _, rec := range records {
		if !inGraph[rec.cited] {
			inGraph[rec.cited] = true
			order = append(order, rec.cited)
		}
	}

	// Indexed equivalents of the per-node record scans: publication years
	// come from each id's first record on either side, citation counts from
	// how often an id is cited.
	firstCitingYear := make(map[string]int)
	firstCitedYear := make(map[string]int)
	citedCount := make(map[string]int)
	for _, rec := range records {
		if _, ok := firstCitingYear[rec.citing]; !ok {
			firstCitingYear[rec.citing] = rec.citingYear
		}
		if _, ok := firstCitedYear[rec.cited]; !ok {
			firstCitedYear[rec.cited] = rec.citedYear
		}
		citedCount[rec.cited]++
	}

	nodes := make([]PaperNode, 0, len(order))
	for _, id := range order {
		var publishYear any = publishYearUnknown
		if year, ok := firstCitingYear[id]; ok {
			publishYear = year
		} else if year, ok := firstCitedYear[id]; ok {
			publishYear = year
		}

		nodes = append(nodes, PaperNode{
			ID:            id,
			Name:          "Paper_" + id,
			PublishYear:   publishYear,
			CitationCount: citedCount[id],
			Institution:   institution,
		})
	}

	type citationPair struct {
		cited  string
		citing string
	}
	counts := make(map[citationPair]int)
	for _, rec := range records {
		counts[citationPair{cited: rec.cited, citing: rec.citing}]++
	}
	pairs := make([]citationPair, 0, len(counts))
	for pair := range counts {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].cited != pairs[j].cited {
			return pairs[i].cited < pairs[j].cited
		}
		return pairs[i].citing < pairs[j].citing
	})

	links := make([]CitationLink, 0, len(pairs))
	for _, pair := range pairs {
		// Both endpoints hold a node by construction; the guard stays anyway
		// so a malformed aggregation can never emit a dangling edge.
		if !inGraph[pair.cited] || !inGraph[pair.citing] {
			continue
		}
		citingYear := firstCitingYear[pair.citing]
		citedYear := firstCitedYear[pair.cited]
		links = append(links, CitationLink{
			Source:     pair.cited,
			Target:     pair.citing,
			Value:      counts[pair],
			CitingYear: citingYear,
			CitedYear:  citedYear,
			YearDiff:   citingYear - citedYear,
		})
	}

	return nodes, links
}
