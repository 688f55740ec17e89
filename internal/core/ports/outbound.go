package ports

import "context"

// StorageGateway uploads a local file to remote object storage. Bucket,
// credentials, and access policy are configuration of the implementation.
type StorageGateway interface {
	Put(ctx context.Context, localPath, key string) error
}

// TextExtractor pulls title and full text out of a spooled upload. A file
// that parses but yields no text returns empty content with a nil error;
// an error means the file could not be parsed at all.
type TextExtractor interface {
	Extract(ctx context.Context, localPath, filename string) (title, content string, err error)
}
