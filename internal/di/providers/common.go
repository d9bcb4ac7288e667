package providers

import "time"

// shutdownTimeout bounds how long graceful shutdown waits on any one service.
const shutdownTimeout = 30 * time.Second
