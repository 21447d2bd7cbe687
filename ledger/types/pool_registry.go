package types

// PoolRegistry lists the liquidity pool accounts of a vault. Registered pools
// never receive rewards.
type PoolRegistry struct {
	Vault PublicKey
	Pools []PublicKey
}

// Contains reports whether pool is registered
func (r *PoolRegistry) Contains(pool PublicKey) bool {
	if r == nil {
		return false
	}
	for _, p := range r.Pools {
		if p == pool {
			return true
		}
	}
	return false
}

// Add registers the given pools, skipping duplicates and zero addresses and
// stopping silently once MaxPools is reached. It returns the number added.
func (r *PoolRegistry) Add(pools []PublicKey) int {
	added := 0
	for _, pool := range pools {
		if len(r.Pools) >= MaxPools {
			break
		}
		if pool == ZeroAddress || r.Contains(pool) {
			continue
		}
		r.Pools = append(r.Pools, pool)
		added++
	}
	return added
}
