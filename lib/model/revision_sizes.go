package model

// Current is the revision that means the working copy, uncommitted changes
// included.
const Current = "current"

const (
	LibraryCrypto = "crypto"
	LibraryX509   = "x509"
	LibraryTLS    = "tls"
)

// RevisionSizes groups the sizes of all libraries built from one revision.
type RevisionSizes struct {
	Revision string

	names     []string
	libraries map[string]*LibrarySizes
}

func NewRevisionSizes(revision string) *RevisionSizes {
	return &RevisionSizes{
		Revision:  revision,
		libraries: map[string]*LibrarySizes{},
	}
}

func (r *RevisionSizes) GetOrCreate(library string) *LibrarySizes {
	result, ok := r.libraries[library]
	if !ok {
		result = NewLibrarySizes(library)
		r.libraries[library] = result
		r.names = append(r.names, library)
	}
	return result
}

func (r *RevisionSizes) Add(lib *LibrarySizes) {
	if _, ok := r.libraries[lib.Name]; !ok {
		r.names = append(r.names, lib.Name)
	}
	r.libraries[lib.Name] = lib
}

func (r *RevisionSizes) Get(library string) (*LibrarySizes, bool) {
	result, ok := r.libraries[library]
	return result, ok
}

func (r *RevisionSizes) Libraries() []*LibrarySizes {
	result := make([]*LibrarySizes, 0, len(r.names))
	for _, name := range r.names {
		result = append(result, r.libraries[name])
	}
	return result
}

func IsCurrent(revision string) bool {
	return revision == Current
}
