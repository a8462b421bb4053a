package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyPrincipalID = "principal_id"
	ContextKeyUserRole    = "user_role"
	ContextKeyRequestID   = "request_id"

	// Database table names
	TableItems           = "items"
	TableRoleAssignments = "role_assignments"
	TableAuditLogs       = "audit_logs"

	// Inventory defaults
	DefaultLowStockThreshold = 10

	// Bulk CSV upload
	BulkUploadFileField = "file"
	BulkHeaderItemID    = "item_id"
	BulkHeaderQuantity  = "new_quantity"

	// Actor recorded for CLI-initiated mutations (role bootstrap)
	SystemActorID = "system"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
