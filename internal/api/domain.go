package api

import (
	"github.com/jazs69/ai-waste-sorter/internal/scans"
)

// Domain holds the domain systems that comprise the API.
type Domain struct {
	Scans scans.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	scansSystem := scans.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Analyzer,
		runtime.Logger,
		runtime.Pagination,
		runtime.Vision.RequestTimeoutDuration(),
	)

	return &Domain{
		Scans: scansSystem,
	}
}
