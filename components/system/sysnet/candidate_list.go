package sysnet

import "github.com/open-control-systems/endpoint-resolver/components/core"

// CandidateList is a result of a single lookup.
//
// Remarks:
//   - Owned by a single resolution, the owner must close it on every path.
type CandidateList interface {
	core.Closer

	// Candidates returns candidates in the order reported by the lookup mechanism.
	Candidates() []Endpoint
}

// SliceCandidateList is a CandidateList backed by a slice.
type SliceCandidateList struct {
	candidates []Endpoint
}

// NewSliceCandidateList is an initialization of SliceCandidateList.
func NewSliceCandidateList(candidates []Endpoint) *SliceCandidateList {
	return &SliceCandidateList{candidates: candidates}
}

// Candidates returns the candidates, nil after Close().
func (l *SliceCandidateList) Candidates() []Endpoint {
	return l.candidates
}

// Close releases the candidates.
func (l *SliceCandidateList) Close() error {
	l.candidates = nil

	return nil
}
