package sink

import (
	"github.com/arthur-debert/overlay/pkg/types"
)

// Recorder is a Sink that keeps every call in order
type Recorder struct {
	mutations []types.Mutation
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Add implements types.Sink
func (r *Recorder) Add(virtualPath string, dir types.Directory) {
	r.mutations = append(r.mutations, types.AddMutation(virtualPath, dir))
}

// Tag implements types.Sink
func (r *Recorder) Tag(virtualPath, tag string) {
	r.mutations = append(r.mutations, types.TagMutation(virtualPath, tag))
}

// Mutations returns a copy of the recorded calls
func (r *Recorder) Mutations() []types.Mutation {
	out := make([]types.Mutation, len(r.mutations))
	copy(out, r.mutations)
	return out
}

// Len returns the number of recorded calls
func (r *Recorder) Len() int {
	return len(r.mutations)
}
