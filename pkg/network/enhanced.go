package network

// paperTopic labels every node of the enhanced citation network.
const paperTopic = "Computer Science"

// BuildEnhancedCitationNetwork builds the citation network at path and
// extends every paper node with a topic label and the placeholder impact
// score. Edges are identical to the base citation network.
func BuildEnhancedCitationNetwork(path string) Result {
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
		res.Nodes = append(res.Nodes, EnhancedPaperNode{
			ID:            node.ID,
			Name:          node.Name,
			PublishYear:   node.PublishYear,
			CitationCount: node.CitationCount,
			Institution:   node.Institution,
			Topic:         paperTopic,
			ImpactScore:   float64(node.CitationCount)*0.8 + 2.0,
		})
	}
	for _, link := range links {
		res.Links = append(res.Links, link)
	}
	return res.normalized()
}
