package blog

// ResultKind tags the outcome of a collection fetch.
type ResultKind int

const (
	Success ResultKind = iota
	Empty
	Failure
)

func (k ResultKind) String() string {
	switch k {
	case Success:
		return "success"
	case Empty:
		return "empty"
	case Failure:
		return "failure"
	}
	return "unknown"
}

// ListResult is the outcome of a collection fetch. Message and Err are set only for Failure.
type ListResult struct {
	Kind       ResultKind
	Articles   Articles
	Pagination Pagination
	Message    string
	Err        error
}

// LookupKind tags the outcome of a single-article lookup.
type LookupKind int

const (
	Found LookupKind = iota
	NotFound
	LookupFailure
)

func (k LookupKind) String() string {
	switch k {
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	case LookupFailure:
		return "failure"
	}
	return "unknown"
}

type LookupResult struct {
	Kind    LookupKind
	Article *Article
	Message string
	Err     error
}
