package models

import "io"

// AttachmentObject is a stored blob opened for reading. Callers must close it.
type AttachmentObject struct {
	ID          string
	Filename    string
	ContentType string
	Size        int64
	Reader      io.ReadCloser
}

func (o *AttachmentObject) Close() error {
	if o.Reader == nil {
		return nil
	}
	return o.Reader.Close()
}

type AttachmentCleanupResult struct {
	ID      string
	Name    string
	Deleted bool
	Err     error
}
