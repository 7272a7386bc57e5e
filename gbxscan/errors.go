package gbxscan

import "errors"

var (
	// ErrorStopDiscovery can be returned by a discovery callback to end the walk early.
	ErrorStopDiscovery = errors.New("Discovery stopped")
	ErrorNotRegular    = errors.New("Not a regular file")
)
