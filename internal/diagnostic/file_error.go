package diagnostic

// FileError is an error that occurred while processing one input file.
// It carries the file contents so that the error can be printed with a
// source excerpt.
type FileError struct {
	// Path is the file name shown to the user, "<stdin>" for standard input.
	Path   string
	Source []byte
	Err    error
}

func (e *FileError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}

	return e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}
