package multigp

import "fmt"

// FetchError means the leaderboard page could not be retrieved, either the
// request failed (Err is set) or the server answered with a non-2xx status.
type FetchError struct {
	Url        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("multigp: fetch %s: %s", e.Url, e.Err.Error())
	}
	return fmt.Sprintf("multigp: fetch %s: unexpected status %d", e.Url, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
