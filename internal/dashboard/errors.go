package dashboard

import "errors"

var ErrInvalidDailyCount = errors.New("daily count must be between 1 and 10")
