// Package audit defines the append-only audit trail entities and contract.
package audit

import "time"

// Action tags recorded in the audit trail.
const (
	ActionCreateItem            = "CREATE_ITEM"
	ActionUpdateItem            = "UPDATE_ITEM"
	ActionUpdateQuantity        = "UPDATE_QUANTITY"
	ActionDeleteItem            = "DELETE_ITEM"
	ActionBulkUpdateQuantity    = "BULK_UPDATE_QUANTITY"
	ActionLowStockTriggered     = "LOW_STOCK_TRIGGERED"
	ActionAssignRole            = "ASSIGN_ROLE"
	ActionUpdateRole            = "UPDATE_ROLE"
	ActionGenerateMonthlyReport = "GENERATE_MONTHLY_REPORT"
)

// QuantityActions are the actions whose new_values imply an item quantity,
// in the order the trend aggregator scans for them.
var QuantityActions = []string{
	ActionCreateItem,
	ActionUpdateItem,
	ActionUpdateQuantity,
	ActionBulkUpdateQuantity,
}

// Entry is one immutable audit record. OldValues holds the full
// pre-mutation snapshot (nil for creations); NewValues the post-mutation
// state. Entries are never updated or deleted by application code.
type Entry struct {
	ID        uint
	ActorID   string
	Action    string
	TableName string
	RecordID  string
	OldValues map[string]any
	NewValues map[string]any
	CreatedAt time.Time
}

// ListFilter narrows an audit log listing. Zero values mean "no filter".
type ListFilter struct {
	ActorID   string
	Action    string
	TableName string
	RecordID  string
	Since     *time.Time
	Until     *time.Time
}
