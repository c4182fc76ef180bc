package network

import (
	"errors"
	"fmt"
	"sort"

	"github.com/citenet/backend/pkg/table"
)

// Affiliation table columns.
const (
	colPaper       = "paperid"
	colAuthor      = "authorid"
	colInstitution = "institutionid"
	colPosition    = "author_position"
)

// sampleSize caps how many distinct papers feed the collaboration graph.
const sampleSize = 1000

// hIndexCeiling caps the placeholder h-index.
const hIndexCeiling = 15

// AffiliationSchema describes the columns the affiliation table must provide.
var AffiliationSchema = table.Schema{
	{Name: colPaper, Type: table.ColumnTypeString},
	{Name: colAuthor, Type: table.ColumnTypeString},
	{Name: colInstitution, Type: table.ColumnTypeString},
	{Name: colPosition, Type: table.ColumnTypeString},
}

type affiliationRecord struct {
	paper    string
	author   string
	position int
}

// BuildCollaborationNetwork loads the affiliation table at path and derives
// author nodes and aggregated co-authorship edges from it. Failures are
// reported inside the Result, never returned as an error.
func BuildCollaborationNetwork(path string) Result {
	records, err := loadAffiliationRecords(path)
	if err != nil {
		return collaborationError(err)
	}

	nodes, links := collaborationGraph(records)

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

func collaborationError(err error) Result {
	var notFound *table.NotFoundError
	if errors.As(err, &notFound) {
		return errorResult(fmt.Sprintf(
			"The CSV file for the author collaboration network could not be found. Please check the path: %s",
			notFound.Path,
		))
	}
	return errorResult(fmt.Sprintf("Author collaboration network data processing failed: %v", err))
}

// loadAffiliationRecords loads the affiliation table, applies the sampling
// cap, resolves author positions and drops rows without a resolvable
// position or with null paper or author ids. Blank and whitespace-only ids
// are already null at the table layer.
func loadAffiliationRecords(path string) ([]affiliationRecord, error) {
	rows, err := table.Load(path, AffiliationSchema)
	if err != nil {
		return nil, err
	}
	rows = samplePapers(rows, sampleSize)

	records := make([]affiliationRecord, 0, len(rows))
	for _, row := range rows {
		position, ok := ResolvePosition(row[colPosition])
		if !ok {
			continue
		}
		paper := row[colPaper]
		author := row[colAuthor]
		if paper.IsNull() || author.IsNull() {
			continue
		}

		records = append(records, affiliationRecord{
			paper:    paper.Text(),
			author:   author.Text(),
			position: position,
		})
	}
	return records, nil
}

// samplePapers bounds the computation cost: when the rows span more than
// limit distinct paper ids, only rows belonging to the first limit distinct
// ids in input order are kept. Distinctness is judged on the raw cell text
// before any cleaning.
func samplePapers(rows []table.Row, limit int) []table.Row {
	seen := make(map[string]bool)
	var order []string
	for _, row := range rows {
		cell := row[colPaper]
		if cell.IsNull() || seen[cell.Text()] {
			continue
		}
		seen[cell.Text()] = true
		order = append(order, cell.Text())
	}
	if len(order) <= limit {
		return rows
	}

	keep := make(map[string]bool, limit)
	for _, id := range order[:limit] {
		keep[id] = true
	}
	sampled := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		cell := row[colPaper]
		if cell.IsNull() || !keep[cell.Text()] {
			continue
		}
		sampled = append(sampled, row)
	}
	return sampled
}

// collaborationGraph derives the author nodes and co-authorship edges from
// the cleaned records. Nodes follow sorted author-id order, edges sorted
// (source, target) order; every pair counts each shared paper once.
func collaborationGraph(records []affiliationRecord) ([]AuthorNode, []CollaborationLink) {
	papersByAuthor := make(map[string]map[string]bool)
	firstAuthorPapers := make(map[string]map[string]bool)
	corrAuthorPapers := make(map[string]map[string]bool)
	authorsByPaper := make(map[string]map[string]bool)
	for _, rec := range records {
		addMember(papersByAuthor, rec.author, rec.paper)
		if rec.position == firstAuthorPosition {
			addMember(firstAuthorPapers, rec.author, rec.paper)
		}
		if rec.position == corrAuthorPosition {
			addMember(corrAuthorPapers, rec.author, rec.paper)
		}
		addMember(authorsByPaper, rec.paper, rec.author)
	}

	authors := make([]string, 0, len(papersByAuthor))
	for author := range papersByAuthor {
		authors = append(authors, author)
	}
	sort.Strings(authors)

	nodes := make([]AuthorNode, 0, len(authors))
	inGraph := make(map[string]bool, len(authors))
	for _, author := range authors {
		published := len(papersByAuthor[author])
		nodes = append(nodes, AuthorNode{
			ID:                author,
			Name:              "Author_" + author,
			Department:        institution,
			PapersPublished:   published,
			FirstAuthorPapers: len(firstAuthorPapers[author]),
			CorrAuthorPapers:  len(corrAuthorPapers[author]),
			HIndex:            min(published, hIndexCeiling),
		})
		inGraph[author] = true
	}

	// Every paper with at least two distinct authors contributes all its
	// unordered author pairs, source strictly below target.
	type authorPair struct {
		source string
		target string
	}
	counts := make(map[authorPair]int)
	for _, authorSet := range authorsByPaper {
		if len(authorSet) < 2 {
			continue
		}
		coauthors := make([]string, 0, len(authorSet))
		for author := range authorSet {
			coauthors = append(coauthors, author)
		}
		sort.Strings(coauthors)
		for i := 0; i < len(coauthors); i++ {
			for j := i + 1; j < len(coauthors); j++ {
				counts[authorPair{source: coauthors[i], target: coauthors[j]}]++
			}
		}
	}

	pairs := make([]authorPair, 0, len(counts))
	for pair := range counts {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].source != pairs[j].source {
			return pairs[i].source < pairs[j].source
		}
		return pairs[i].target < pairs[j].target
	})

	links := make([]CollaborationLink, 0, len(pairs))
	for _, pair := range pairs {
		if !inGraph[pair.source] || !inGraph[pair.target] {
			continue
		}
		links = append(links, CollaborationLink{
			Source:           pair.source,
			Target:           pair.target,
			Value:            counts[pair],
			CoAuthoredPapers: counts[pair],
		})
	}

	return nodes, links
}

func addMember(sets map[string]map[string]bool, key, member string) {
	if sets[key] == nil {
		sets[key] = make(map[string]bool)
	}
	sets[key][member] = true
}
