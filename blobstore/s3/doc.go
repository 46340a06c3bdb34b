// Package s3 implements blobstore.Store for Amazon S3 and compatible object
// stores, using the AWS SDK v2.
//
// Objects are read with a single streaming GetObject per Open. Wrap the store
// in a blobstore.SpoolStore when it feeds the comparison engine, which reads
// each source more than once.
package s3
