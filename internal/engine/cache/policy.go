package cache

import "go.trai.ch/runcache/internal/core/domain"

// Eligible reports whether a result may be served from or written to the
// cache under the given scope. The same predicate gates both directions:
// what can be cached is exactly what can be served.
func Eligible(result *domain.ExecutionResult, scope domain.CacheScope) bool {
	return result.ExitCode == 0 || scope == domain.ScopeAlways
}
