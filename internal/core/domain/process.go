package domain

import "runtime"

// Platform identifies the platform a process runs on or a result was produced on.
type Platform string

const (
	// PlatformLinuxX8664 is 64-bit x86 Linux.
	PlatformLinuxX8664 Platform = "linux_x86_64"
	// PlatformLinuxArm64 is 64-bit ARM Linux.
	PlatformLinuxArm64 Platform = "linux_arm64"
	// PlatformMacosX8664 is 64-bit x86 macOS.
	PlatformMacosX8664 Platform = "macos_x86_64"
	// PlatformMacosArm64 is Apple silicon macOS.
	PlatformMacosArm64 Platform = "macos_arm64"
)

// CurrentPlatform returns the platform of the running binary.
func CurrentPlatform() Platform {
	switch {
	case runtime.GOOS == "darwin" && runtime.GOARCH == "arm64":
		return PlatformMacosArm64
	case runtime.GOOS == "darwin":
		return PlatformMacosX8664
	case runtime.GOARCH == "arm64":
		return PlatformLinuxArm64
	default:
		return PlatformLinuxX8664
	}
}

// CacheScope controls which process outcomes are cache-eligible.
type CacheScope string

const (
	// ScopeSuccessful caches only results with exit code zero.
	ScopeSuccessful CacheScope = "successful"
	// ScopeAlways caches every outcome, including failures.
	ScopeAlways CacheScope = "always"
)

// Process is a single concrete execution request for one platform.
type Process struct {
	// Description names the process for logs and spans. It does not
	// participate in cache key derivation.
	Description string
	Argv        []string
	Env         map[string]string
	WorkingDir  string
	OutputPaths []string
	Scope       CacheScope
	Platform    Platform
}

// Request maps platform constraints to concrete processes. A request with a
// single variant is the common case; multi-variant requests let the executor
// pick whichever platform it can satisfy.
type Request struct {
	Variants map[Platform]*Process
}

// NewRequest builds a request from one or more platform variants.
func NewRequest(procs ...*Process) *Request {
	variants := make(map[Platform]*Process, len(procs))
	for _, p := range procs {
		variants[p.Platform] = p
	}
	return &Request{Variants: variants}
}

// CacheScope returns ScopeAlways if any variant requests it, otherwise
// ScopeSuccessful.
func (r *Request) CacheScope() CacheScope {
	for _, p := range r.Variants {
		if p.Scope == ScopeAlways {
			return ScopeAlways
		}
	}
	return ScopeSuccessful
}

// UserFacingName returns a human-readable name for the request.
func (r *Request) UserFacingName() string {
	for _, p := range r.Variants {
		if p.Description != "" {
			return p.Description
		}
	}
	for _, p := range r.Variants {
		if len(p.Argv) > 0 {
			return p.Argv[0]
		}
	}
	return "process"
}
