package types

import "time"

// AntiSniperLimit returns the largest transfer allowed at now and whether the
// cap is in force. The cap applies for AntiSniperWindow after launch and is
// AntiSniperMaxBps of supply.
func AntiSniperLimit(launch, now time.Time, supply uint64) (uint64, bool) {
	if launch.IsZero() || launch.Unix() == 0 {
		return 0, false
	}
	if now.Sub(launch) >= AntiSniperWindow {
		return 0, false
	}
	max, _ := MulDiv(supply, AntiSniperMaxBps, BasisPointsDenominator)
	return max, true
}
