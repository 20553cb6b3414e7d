package view

import "github.com/daniilsolovey/persian-blog/internal/blog"

// State is the presentation chosen once per request.
type State string

const (
	StateError     State = "error"
	StateEmpty     State = "empty"
	StateNotFound  State = "not_found"
	StatePopulated State = "populated"
)

// Resolve prefers Error over any data the result may carry.
func Resolve(res blog.ListResult) State {
	switch {
	case res.Kind == blog.Failure:
		return StateError
	case res.Kind == blog.Empty, len(res.Articles) == 0:
		return StateEmpty
	}
	return StatePopulated
}

func ResolveLookup(res blog.LookupResult) State {
	switch {
	case res.Kind == blog.LookupFailure:
		return StateError
	case res.Kind == blog.NotFound, res.Article == nil:
		return StateNotFound
	}
	return StatePopulated
}
