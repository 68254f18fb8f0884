package github

// ObjectKind identifies the kind of object a lookup resolved to.
type ObjectKind string

const (
	// KindBlob is a file-content node
	KindBlob ObjectKind = "blob"

	// KindTree is a directory node
	KindTree ObjectKind = "tree"

	// KindCommit is a commit object (valid in the object graph, never a
	// valid subtree member)
	KindCommit ObjectKind = "commit"

	// KindTag is an annotated tag object (valid in the object graph, never
	// a valid subtree member)
	KindTag ObjectKind = "tag"
)

// TreeEntry is one child reference in a tree listing.
type TreeEntry struct {
	// Name is the entry name, unique within its tree
	Name string `json:"name"`

	// OID is the server-assigned object id used for the child lookup
	OID string `json:"oid"`
}

// Object is the typed result of a lookup.
type Object struct {
	// Kind discriminates which of the remaining fields are meaningful
	Kind ObjectKind

	// Text is the blob payload for KindBlob, nil when the payload is not
	// representable as text (binary content)
	Text *string

	// Entries is the ordered child list for KindTree
	Entries []TreeEntry
}
