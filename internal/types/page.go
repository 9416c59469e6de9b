package types

type (
	// Candidate is one accepted source file, slash-separated and relative to
	// its PackageSpec.Path, so the first segment is the package name.
	Candidate struct {
		RelPath string `json:"relPath"`
	}

	// Page is the reference page derived from one candidate.
	Page struct {
		Module  string   `json:"module"`  // dotted identifier, e.g. "pkg.sub.mod"
		Source  string   `json:"source"`  // candidate path the page was derived from
		DocPath string   `json:"docPath"` // destination relative to the reference root
		Parts   []string `json:"-"`       // navigation segments, initializer collapsed
	}
)
