// Package csvdiff provides an embeddable comparison engine for tabular CSV data.
//
// Csvdiff compares an "expected" dataset against an "actual" dataset and
// classifies every row as kept, inserted, deleted, or modified. Rows are
// matched across the two datasets by the value of a designated identity
// column. The engine is a library, not an application: callers supply the two
// sources, options, and optionally an Observer, and receive an immutable
// Result.
//
// # Quick Start
//
// Compare two local files:
//
//	ctx := context.Background()
//	store := blobstore.NewLocalStore("./data")
//	result, err := csvdiff.Compare(ctx, store,
//	    csvdiff.Source{Expected: "expected.csv", Actual: "actual.csv"},
//	    csvdiff.WithIdentityColumn(0),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Different(), result.Summary())
//
// Cloud sources work the same way; wrap remote stores in a SpoolStore so the
// engine's repeated reads hit a local copy:
//
//	s3Store, _ := s3.NewDefault(ctx, "my-bucket", s3.WithPrefix("exports/"))
//	spool, _ := blobstore.NewSpoolStore(s3Store)
//	defer spool.Close()
//	result, err := csvdiff.Compare(ctx, spool, source)
//
// # Matching Model
//
// The expected dataset is fully materialized and indexed by the identity
// column; the actual dataset is streamed exactly once. Each actual row either
// matches an expected row (kept if cell-for-cell equal, modified otherwise)
// or has no counterpart (inserted). Expected rows never matched are deleted.
// On duplicate identity keys in the expected dataset the last occurrence by
// file order wins; earlier occurrences do not participate in matching.
//
// # Observation
//
// Every classification is pushed to an Observer as it happens, in a fixed
// order: ComparisonStarted, then one event per actual row in stream order,
// then deletion events in expected-file order, then ComparisonFinished. The
// built-in accumulator always runs and produces the Result; a caller-supplied
// Observer receives the same events.
//
// # Reports
//
// An optional report writer serializes the finished Result to a configured
// location, with pluggable codecs (see codec) and optional gzip/zstd/lz4
// compression (see report).
package csvdiff
