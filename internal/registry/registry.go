// Package registry caches mosaic definitions locally so transfer fees
// can be computed without a node round-trip for every build.
package registry

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/xemtech/xemwallet/internal/log"
	"github.com/xemtech/xemwallet/internal/nis"
	"github.com/xemtech/xemwallet/internal/storage"
	"github.com/xemtech/xemwallet/pkg/crypto"
	"github.com/xemtech/xemwallet/pkg/fees"
	"github.com/xemtech/xemwallet/pkg/types"
)

var prefixMosaic = []byte("m/") // m/<fingerprint(32)> -> MosaicInfo JSON

// Source fetches mosaic state from a node. *nis.Client satisfies it.
type Source interface {
	MosaicDefinitions(namespace string) ([]nis.MosaicDefinition, error)
	MosaicSupply(id types.MosaicID) (uint64, error)
}

// Registry persists mosaic snapshots and serves them to the fee
// calculation. Safe for concurrent use.
type Registry struct {
	mu sync.RWMutex
	db storage.DB
}

// New creates a registry over the given database.
func New(db storage.DB) *Registry {
	return &Registry{db: db}
}

// Put stores a mosaic snapshot.
func (r *Registry) Put(info types.MosaicInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("mosaic marshal: %w", err)
	}
	return r.db.Put(mosaicKey(info.ID), data)
}

// Get retrieves a mosaic snapshot. The boolean follows the comma-ok
// convention so the registry plugs straight into the fee calculation.
func (r *Registry) Get(id types.MosaicID) (types.MosaicInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := r.db.Get(mosaicKey(id))
	if err != nil {
		return types.MosaicInfo{}, false
	}
	var info types.MosaicInfo
	if err := json.Unmarshal(data, &info); err != nil {
		log.Registry.Warn().Str("mosaic", id.FullName()).Err(err).Msg("corrupt cache entry")
		return types.MosaicInfo{}, false
	}
	return info, true
}

// Delete removes a mosaic snapshot.
func (r *Registry) Delete(id types.MosaicID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.Delete(mosaicKey(id))
}

// Snapshot returns all cached mosaics as the map form the fee
// calculation consumes.
func (r *Registry) Snapshot() (fees.RegistryMap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(fees.RegistryMap)
	err := r.db.ForEach(prefixMosaic, func(key, value []byte) error {
		var info types.MosaicInfo
		if err := json.Unmarshal(value, &info); err != nil {
			return nil // Skip corrupt entries.
		}
		out[info.ID.FullName()] = info
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("registry snapshot: %w", err)
	}
	return out, nil
}

// Refresh pulls the definitions of a namespace from the node and
// caches them with their current supply. Returns the number of mosaics
// updated.
func (r *Registry) Refresh(src Source, namespace string) (int, error) {
	defs, err := src.MosaicDefinitions(namespace)
	if err != nil {
		return 0, fmt.Errorf("refresh %s: %w", namespace, err)
	}

	updated := 0
	for _, def := range defs {
		info, err := def.Info()
		if err != nil {
			log.Registry.Warn().Err(err).Msg("skipping malformed definition")
			continue
		}
		// Prefer the live supply over the definition's initialSupply;
		// supply changes would leave the latter stale.
		if supply, err := src.MosaicSupply(info.ID); err == nil {
			info.Supply = supply
		}
		if err := r.Put(info); err != nil {
			return updated, err
		}
		updated++
	}
	log.Registry.Debug().Str("namespace", namespace).Int("mosaics", updated).Msg("cache refreshed")
	return updated, nil
}

// mosaicKey builds a fixed-width key from the mosaic's full name.
// Fingerprinting keeps arbitrary-length names out of the keyspace.
func mosaicKey(id types.MosaicID) []byte {
	fp := crypto.Fingerprint([]byte(id.FullName()))
	key := make([]byte, len(prefixMosaic)+len(fp))
	copy(key, prefixMosaic)
	copy(key[len(prefixMosaic):], fp[:])
	return key
}
