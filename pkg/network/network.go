package network

import (
	"github.com/citenet/backend/pkg/sanitize"
)

// institution labels every node in the reference data set.
const institution = "Yeshiva University, Computer Science Department"

// Result is the payload shape shared by all graph builders. On failure
// Error carries the message and Nodes/Links are empty, never nil; on
// success the error key is absent from the serialized form. Builders report
// every failure through the Result, they do not return Go errors.
type Result struct {
	Error string `json:"error,omitempty"`
	Nodes []any  `json:"nodes"`
	Links []any  `json:"links"`
}

// Failed reports whether the result carries an error instead of a graph.
func (r Result) Failed() bool {
	return r.Error != ""
}

// normalized runs the result through the sanitize boundary exactly once,
// collapsing typed nodes and links into plain JSON-safe values.
func (r Result) normalized() Result {
	r.Nodes = sanitize.List(r.Nodes)
	r.Links = sanitize.List(r.Links)
	return r
}

func errorResult(message string) Result {
	return Result{Error: message, Nodes: []any{}, Links: []any{}}
}
