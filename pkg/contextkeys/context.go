package contextkeys

// Custom type avoids collisions with other context values.
type contextKey string

// DBContextKey is the key under which the request-scoped *gorm.DB is stored.
const DBContextKey = contextKey("db")
