// Package blobstore abstracts where the CSV datasets live.
//
// The comparison engine reads each source more than once (encoding
// detection, header bootstrap, the data pass), so stores hand out a fresh
// sequential reader per Open call. Local files are memory-mapped; remote
// stores (see the s3 and minio subpackages) should be wrapped in a
// SpoolStore so that repeated reads hit a staged local copy instead of
// re-fetching the object.
package blobstore
