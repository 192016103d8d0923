package portfolio

import "errors"

// ErrDataUnavailable indicates the tracker database could not be opened or
// queried. It is the only failure mode of the loading path.
var ErrDataUnavailable = errors.New("project data unavailable")
