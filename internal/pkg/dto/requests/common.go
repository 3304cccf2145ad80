package requests

import "io"

// AttachmentUpload is one uploaded file part. Reader is owned by the caller and
// must stay open until the usecase returns.
type AttachmentUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// Close releases the underlying multipart part when it holds one.
func (u *AttachmentUpload) Close() error {
	if closer, ok := u.Reader.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func CloseUploads(uploads ...[]*AttachmentUpload) {
	for _, group := range uploads {
		for _, upload := range group {
			upload.Close()
		}
	}
}
