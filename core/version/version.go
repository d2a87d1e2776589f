package version

const (
	// SchemaVersion is the canonical version for persisted run records.
	SchemaVersion = "v0.1.0"
	// CoreVersion tracks overall harness semantics; bump when the adapter
	// contract or the QASM subset changes.
	CoreVersion = "v0.1.0"
)
