package network

// PaperNode is one paper in a citation network payload. Papers appear once,
// no matter how often their id shows up as citing or cited.
//
// PublishYear is the resolved publication year of the paper, or the string
// "Unknown" when no retained record yields one.
type PaperNode struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PublishYear   any    `json:"publish_year"`
	CitationCount int    `json:"citation_count"`
	Institution   string `json:"institution"`
}

// EnhancedPaperNode is a PaperNode extended with a topic label and a
// derived impact score. The impact formula is a fixed placeholder
// (citation_count * 0.8 + 2.0) carried over from the reference data set.
type EnhancedPaperNode struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PublishYear   any     `json:"publish_year"`
	CitationCount int     `json:"citation_count"`
	Institution   string  `json:"institution"`
	Topic         string  `json:"topic"`
	ImpactScore   float64 `json:"impact_score"`
}

// CitationLink is a directed edge from a cited paper to the papers citing
// it. Source is the cited id and Target the citing id; Value counts the
// retained records sharing that pair.
//
// CitingYear and CitedYear come from the first retained record for each
// side, YearDiff is their difference.
type CitationLink struct {
	Source     string `json:"source"`
	Target     string `json:"target"`
	Value      int    `json:"value"`
	CitingYear int    `json:"citing_year"`
	CitedYear  int    `json:"cited_year"`
	YearDiff   int    `json:"year_diff"`
}

// AuthorNode is one author in a collaboration network payload. The paper
// counters hold distinct paper counts after cleaning; HIndex is a fixed
// placeholder capped at 15, not a real h-index.
type AuthorNode struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Department        string `json:"department"`
	PapersPublished   int    `json:"papers_published"`
	FirstAuthorPapers int    `json:"first_author_papers"`
	CorrAuthorPapers  int    `json:"corr_author_papers"`
	HIndex            int    `json:"h_index"`
}

// CollaborationLink is an undirected co-authorship edge. Source sorts
// before Target lexicographically; Value and CoAuthoredPapers both count
// the distinct papers the two authors share.
type CollaborationLink struct {
	Source           string `json:"source"`
	Target           string `json:"target"`
	Value            int    `json:"value"`
	CoAuthoredPapers int    `json:"co_authored_papers"`
}
