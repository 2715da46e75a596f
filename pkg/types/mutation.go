package types

// MutationOp identifies a sink call
type MutationOp string

const (
	// OpAdd layers a directory at a virtual path
	OpAdd MutationOp = "add"
	// OpTag attaches a tag to a virtual path
	OpTag MutationOp = "tag"
)

// Mutation is one recorded sink call. Directory is set for OpAdd, Tag for OpTag.
type Mutation struct {
	Op        MutationOp `json:"op" yaml:"op" toml:"op"`
	Path      string     `json:"path" yaml:"path" toml:"path"`
	Directory string     `json:"directory,omitempty" yaml:"directory,omitempty" toml:"directory,omitempty"`
	Tag       string     `json:"tag,omitempty" yaml:"tag,omitempty" toml:"tag,omitempty"`
}

// AddMutation builds an OpAdd mutation
func AddMutation(path string, dir Directory) Mutation {
	return Mutation{Op: OpAdd, Path: path, Directory: dir.Path}
}

// TagMutation builds an OpTag mutation
func TagMutation(path, tag string) Mutation {
	return Mutation{Op: OpTag, Path: path, Tag: tag}
}
