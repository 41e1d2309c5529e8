package diagnostics

// Lexer diagnostic codes. The L00xx range is fatal, L01xx is advisory.
const (
	ErrFailedToOpen    = "L0001"
	ErrInvalidEncoding = "L0002"
	ErrReadFailed      = "L0003"

	WarnUnterminatedBlockComment = "L0101"
)
