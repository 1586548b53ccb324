package cache

import (
	"crypto/sha256"
	"hash"
	"sort"

	"go.trai.ch/runcache/internal/core/domain"
	"go.trai.ch/runcache/internal/core/ports"
)

var _ ports.KeyDeriver = (*Keyer)(nil)

// Keyer derives cache fingerprints from the canonical content of a request
// plus the static execution metadata. Descriptions are cosmetic and do not
// participate.
type Keyer struct{}

// NewKeyer creates a new Keyer.
func NewKeyer() *Keyer {
	return &Keyer{}
}

// DeriveKey computes the fingerprint for req under md.
func (k *Keyer) DeriveKey(req *domain.Request, md *domain.Metadata) domain.Fingerprint {
	h := sha256.New()

	k.hashMetadata(md, h)

	// Sort platforms so map iteration order cannot leak into the key.
	platforms := make([]string, 0, len(req.Variants))
	for platform := range req.Variants {
		platforms = append(platforms, string(platform))
	}
	sort.Strings(platforms)

	for _, platform := range platforms {
		writeField(h, platform)
		k.hashProcess(req.Variants[domain.Platform(platform)], h)
	}

	var fp domain.Fingerprint
	copy(fp[:], h.Sum(nil))
	return fp
}

func (k *Keyer) hashMetadata(md *domain.Metadata, h hash.Hash) {
	if md == nil {
		writeSection(h)
		return
	}

	writeField(h, md.InstanceName)
	writeField(h, md.CacheKeyGenVersion)
	for _, prop := range md.PlatformProperties {
		writeField(h, prop.Name+"="+prop.Value)
	}
	writeSection(h)
}

func (k *Keyer) hashProcess(p *domain.Process, h hash.Hash) {
	for _, arg := range p.Argv {
		writeField(h, arg)
	}
	writeSection(h)

	// Sort env keys for determinism.
	keys := make([]string, 0, len(p.Env))
	for key := range p.Env {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		writeField(h, key+"="+p.Env[key])
	}
	writeSection(h)

	writeField(h, p.WorkingDir)

	outputs := make([]string, len(p.OutputPaths))
	copy(outputs, p.OutputPaths)
	sort.Strings(outputs)
	for _, out := range outputs {
		writeField(h, out)
	}
	writeSection(h)

	writeField(h, string(p.Scope))
	writeSection(h)
}

func writeField(h hash.Hash, s string) {
	_, _ = h.Write([]byte(s))
	_, _ = h.Write([]byte{0})
}

func writeSection(h hash.Hash) {
	_, _ = h.Write([]byte{0})
}
