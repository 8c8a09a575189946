package remote

import "net/url"

// DriverService describes a locally-managed driver process a session plan
// can be aimed at. The builder never starts or stops the process; it only
// records where the service accepts new session requests. The service
// package provides the standard implementation.
type DriverService interface {
	// URL is the address the service accepts new session requests on
	URL() *url.URL

	// Running reports whether the service is currently reachable
	Running() bool
}
