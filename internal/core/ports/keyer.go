package ports

import "go.trai.ch/runcache/internal/core/domain"

// KeyDeriver computes cache fingerprints for process requests.
//
//go:generate go run go.uber.org/mock/mockgen -source=keyer.go -destination=mocks/mock_keyer.go -package=mocks
type KeyDeriver interface {
	// DeriveKey returns a deterministic fingerprint of the request's
	// canonical content plus the static execution metadata. It is pure:
	// equal content always yields equal fingerprints.
	DeriveKey(req *domain.Request, md *domain.Metadata) domain.Fingerprint
}
