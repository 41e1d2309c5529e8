package diagnostics

import (
	"ppc/internal/source"
)

// Common diagnostic builders for the tokenizer

// FailedToOpen creates a diagnostic for a source file that could not be opened
func FailedToOpen(filepath string, cause error) *Diagnostic {
	return NewError("failed to open "+filepath).
		WithCode(ErrFailedToOpen).
		WithFile(filepath).
		WithNote(cause.Error()).
		WithHelp("check that the file exists and is readable")
}

// InvalidEncoding creates a diagnostic for invalid UTF-8 in the input
func InvalidEncoding(filepath string, loc *source.Location) *Diagnostic {
	return NewError("source is not valid UTF-8").
		WithCode(ErrInvalidEncoding).
		WithLabel(filepath, loc, "first invalid byte is here").
		WithHelp("re-save the file as UTF-8")
}

// ReadFailed creates a diagnostic for an I/O failure while reading the input
func ReadFailed(filepath string, cause error) *Diagnostic {
	return NewError("failed to read "+filepath).
		WithCode(ErrReadFailed).
		WithFile(filepath).
		WithNote(cause.Error())
}

// UnterminatedBlockComment creates a warning for a block comment still open
// at end of input. The trailing comment text was discarded, not tokenized.
func UnterminatedBlockComment(filepath string) *Diagnostic {
	return NewWarning("block comment is not closed at end of file").
		WithCode(WarnUnterminatedBlockComment).
		WithFile(filepath).
		WithNote("everything after the last /* was ignored").
		WithHelp("add a closing */ to terminate the comment")
}
