// Package minio implements blobstore.Store for MinIO and other S3-compatible
// object stores via the MinIO Go client.
//
// Wrap the store in a blobstore.SpoolStore when it feeds the comparison
// engine, which reads each source more than once.
package minio
