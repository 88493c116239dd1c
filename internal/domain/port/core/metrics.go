package core

// Tag removal outcomes
const (
	RemovalOutcomeRemoved      = "removed"
	RemovalOutcomeNotFound     = "tag_not_found"
	RemovalOutcomeResolveError = "resolve_error"
	RemovalOutcomeRemoveError  = "remove_error"
)

// Reconciliation paths
const (
	ReconcilePathInitialGrant = "initial_grant"
	ReconcilePathRefresh      = "monthly_refresh"
	ReconcilePathUpgradeBonus = "upgrade_bonus"
	ReconcilePathPurchase     = "purchase"
	ReconcilePathDegraded     = "degraded"
)

// Metrics records observability-only outcomes. Best-effort side effects
// (purchase tag removal) report here instead of the transactional contract.
type Metrics interface {
	// RecordTagRemoval counts one tag removal attempt by outcome
	RecordTagRemoval(outcome string)
	// RecordReconcile counts one reconciliation branch taken
	RecordReconcile(path string)
}
