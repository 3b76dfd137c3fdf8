package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"
	// GeneralNotFoundError represents a generic not found error.
	GeneralNotFoundError ErrorCode = "general_not_found_error"

	// DuplicateOrderID represents a rejection of an order whose id is already live in the book.
	DuplicateOrderID ErrorCode = "duplicate_order_id"
	// OrderNotFound represents a cancel or lookup of an id that is not resting in the book.
	OrderNotFound ErrorCode = "order_not_found"
	// InvalidOrderSize represents a rejection of a non-positive order size.
	InvalidOrderSize ErrorCode = "invalid_order_size"
	// InvalidOrderPrice represents a rejection of a non-positive limit price.
	InvalidOrderPrice ErrorCode = "invalid_order_price"
	// InvalidConditionalRange represents a malformed stop-loss or take-profit range.
	InvalidConditionalRange ErrorCode = "invalid_conditional_range"
	// UnknownSymbolState represents an internal book consistency failure. Fatal.
	UnknownSymbolState ErrorCode = "unknown_symbol_state"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisDisconnectionError represents an error when disconnecting from Redis.
	RedisDisconnectionError ErrorCode = "redis_disconnection_error"
	// RedisPingError represents an error when pinging Redis.
	RedisPingError ErrorCode = "redis_pinging_error"
	// RedisGetError represents an error when getting a value from Redis.
	RedisGetError ErrorCode = "redis_get_error"
	// RedisSetError represents an error when setting a value in Redis.
	RedisSetError ErrorCode = "redis_set_error"
	// RedisDelError represents an error when deleting a value from Redis.
	RedisDelError ErrorCode = "redis_del_error"
)
