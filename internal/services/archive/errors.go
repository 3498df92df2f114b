package archive

// ArchiveError is a custom error type for archival failures
type ArchiveError string

// Error implements the error interface
func (e ArchiveError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound     ArchiveError = "session not found"
	ErrSessionNotFinished  ArchiveError = "session is not finished"
	ErrNilConfig           ArchiveError = "config cannot be nil"
	ErrNilSessionRepo      ArchiveError = "session repository cannot be nil"
	ErrNilHistoryRepo      ArchiveError = "history repository cannot be nil"
	ErrNilClock            ArchiveError = "clock cannot be nil"
)
