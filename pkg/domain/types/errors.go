package types

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOption    = errors.New("invalid option")
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidFeedData  = errors.New("invalid feed data")
)

type FetchReason string

const (
	ReasonListing FetchReason = "listing error"
	ReasonFeed    FetchReason = "feed error"
)

// FetchError is returned when an external listing or feed endpoint answers with a non-success status.
type FetchError struct {
	Reason FetchReason
	Status int
}

func (x *FetchError) Error() string {
	return fmt.Sprintf("%s: %d", x.Reason, x.Status)
}

// AsFetchError extracts a *FetchError from the chain of err.
func AsFetchError(err error) (*FetchError, bool) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}
