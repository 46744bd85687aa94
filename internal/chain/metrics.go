// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chain

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation layer metrics
var (
	mOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "meridian",
		Subsystem: "chain",
		Name:      "operations",
		Help:      "Number of operations by type and status",
	}, []string{"type", "status"})
	mTokensMinted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "meridian",
		Subsystem: "chain",
		Name:      "tokens_minted",
		Help:      "Total value minted",
	}, []string{"token"})
	mTokensBurned = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "meridian",
		Subsystem: "chain",
		Name:      "tokens_burned",
		Help:      "Total value burned",
	}, []string{"token"})
	mTokensPreburned = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "meridian",
		Subsystem: "chain",
		Name:      "tokens_preburned",
		Help:      "Total value moved into preburn escrow",
	}, []string{"token"})
)
