package services

import "time"

// timeNow is swapped in tests to pin visibility checks.
var timeNow = time.Now
