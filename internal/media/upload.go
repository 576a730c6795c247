package media

import "io"

// Upload is a file received from the panel, ready to stream into the bucket.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}
