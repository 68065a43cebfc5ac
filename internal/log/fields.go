package log

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldMethod    = "method"
	FieldCode      = "code"
	FieldDuration  = "duration_ms"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldDebtID    = "debt_id"
	FieldBackend   = "backend"
	FieldAddr      = "addr"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentGRPC    = "grpc"
	ComponentStorage = "storage"
	ComponentCLI     = "cli"
)

// Operations defines standard operation names
const (
	OpStartup  = "startup"
	OpShutdown = "shutdown"
	OpMigrate  = "migrate"
)
