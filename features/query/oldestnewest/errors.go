package oldestnewest

import "errors"

// ErrNoRecords is returned when there is no book to compare.
var ErrNoRecords = errors.New("no book records to compare")
