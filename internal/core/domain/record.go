package domain

// The persisted record schema mirrors the remote-execution ActionResult
// shape so entries stay schema-compatible with the wider ecosystem.

// OutputDirectory references a captured output tree by its manifest digest.
type OutputDirectory struct {
	Path       string `json:"path"`
	TreeDigest Digest `json:"tree_digest"`
}

// ActionResult is the persisted form of an ExecutionResult.
type ActionResult struct {
	ExitCode          int               `json:"exit_code"`
	OutputDirectories []OutputDirectory `json:"output_directories,omitempty"`
	StdoutDigest      Digest            `json:"stdout_digest"`
	StderrDigest      Digest            `json:"stderr_digest"`
	ExecutionMetadata ExecutionMetadata `json:"execution_metadata"`
}

// ExecuteResponse wraps an ActionResult. CachedResult is always true for
// entries written by this cache.
type ExecuteResponse struct {
	CachedResult bool          `json:"cached_result"`
	Result       *ActionResult `json:"result,omitempty"`
}

// Entry is the envelope persisted in the execution store: the platform the
// result was produced on plus the encoded response.
type Entry struct {
	Platform      Platform `json:"platform"`
	ResponseBytes []byte   `json:"response_bytes"`
}
