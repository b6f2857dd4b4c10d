package portal

const DatesLayout = "2006-01-02 15:04:05"
const DisplayDateLayout = "January 2, 2006"

// ---- Middleware / HTTP

const RequestIDHeader = "X-Request-ID"
const ForwardedForHeader = "X-Forwarded-For"

// ---- Middleware / Context

type contextKey string

const RequestIDKey contextKey = "request.id"
const ClientIPKey contextKey = "request.client_ip"
