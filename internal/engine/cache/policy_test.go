package cache_test

import (
	"testing"

	"go.trai.ch/runcache/internal/core/domain"
	"go.trai.ch/runcache/internal/engine/cache"
)

func TestEligible(t *testing.T) {
	tests := []struct {
		name     string
		exitCode int
		scope    domain.CacheScope
		want     bool
	}{
		{"success under default scope", 0, domain.ScopeSuccessful, true},
		{"failure under default scope", 1, domain.ScopeSuccessful, false},
		{"success under always scope", 0, domain.ScopeAlways, true},
		{"failure under always scope", 1, domain.ScopeAlways, true},
		{"signal exit under default scope", -1, domain.ScopeSuccessful, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &domain.ExecutionResult{ExitCode: tt.exitCode}
			if got := cache.Eligible(result, tt.scope); got != tt.want {
				t.Errorf("Eligible(exit=%d, scope=%s) = %v, want %v", tt.exitCode, tt.scope, got, tt.want)
			}
		})
	}
}
