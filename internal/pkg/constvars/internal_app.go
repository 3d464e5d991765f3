package constvars

type contextKey string

const (
	CONTEXT_IDENTITY_KEY   contextKey = "identity"
	CONTEXT_TOKEN_HASH_KEY contextKey = "tokenHash"
	CONTEXT_REQUEST_ID_KEY contextKey = "requestID"
)

// Mongo collections. All documents are keyed by an application-level
// UUID "id" field; "_id" never leaves the repository layer.
const (
	MongoCollectionOrganizations   = "organizations"
	MongoCollectionUsers           = "users"
	MongoCollectionRoles           = "roles"
	MongoCollectionUserSessions    = "user_sessions"
	MongoCollectionAuditLogs       = "audit_logs"
	MongoCollectionDonors          = "donors"
	MongoCollectionDonations       = "donations"
	MongoCollectionScreenings      = "screenings"
	MongoCollectionLabTests        = "lab_tests"
	MongoCollectionBloodComponents = "blood_components"
	MongoCollectionInventoryItems  = "inventory_items"
	MongoCollectionBloodRequests   = "blood_requests"
	MongoCollectionShipments       = "shipments"
)

// User types, ordered from widest to narrowest scope.
const (
	UserTypeSystemAdmin = "system_admin"
	UserTypeSuperAdmin  = "super_admin"
	UserTypeTenantAdmin = "tenant_admin"
	UserTypeStaff       = "staff"
	UserTypeRequestor   = "requestor"
)

const (
	SessionTerminationManual  = "Manual termination"
	SessionTerminationIdle    = "Idle timeout"
	SessionTerminationEvicted = "Concurrent session cap"
	SessionTerminationLogout  = "Logout"
)

const (
	RedisSessionKeyPrefix = "session:"
)

const (
	NotificationEventRequestCreated = "blood_request.created"
	NotificationEventRequestDecided = "blood_request.decided"
	NotificationEventLowStock       = "inventory.low_stock"
)

const (
	LoggingRequestIDKey = "request_id"
)

const AppPaginationUrlFormat = "%s?page=%d&pageSize=%d"
