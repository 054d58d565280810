package outline

import (
	"errors"
	"fmt"
)

// ErrOpenDocument reports that the primary backend could not open or
// parse the document. The orchestrator recovers from it by switching
// to the fallback source, so callers only see it when the fallback
// fails too.
var ErrOpenDocument = errors.New("cannot open document")

// ErrFallbackOpen reports that the fallback backend could not read the
// document either. Fatal for this document.
var ErrFallbackOpen = errors.New("fallback cannot read document")

// ProcessingError attaches a document identifier to an extraction
// failure so a batch driver can record the failure against one item
// and continue with the rest.
type ProcessingError struct {
	Name string
	Err  error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("process %s: %v", e.Name, e.Err)
}

func (e *ProcessingError) Unwrap() error { return e.Err }
