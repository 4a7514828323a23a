package fetch

import "net/http"

// Doer abstracts the HTTP client used to retrieve documents.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}
