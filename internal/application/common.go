package application

import "time"

// Clock supplies timestamps for audit entries
type Clock func() time.Time
