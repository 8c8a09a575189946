package remote

import "net/url"

// target is the execution target a session plan is aimed at. Exactly one
// variant may be assigned per builder, which keeps "both a URL and a
// service" unrepresentable in a finalized plan.
type target interface {
	isTarget()
}

// remoteEndpoint aims the plan at an already-running remote end.
type remoteEndpoint struct {
	url *url.URL
}

func (remoteEndpoint) isTarget() {}

// localService aims the plan at a driver process managed by the caller.
type localService struct {
	service DriverService
}

func (localService) isTarget() {}
