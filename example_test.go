package csvdiff_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/csvdiff"
	"github.com/hupe1980/csvdiff/blobstore"
)

// Example demonstrates comparing two in-memory CSV datasets.
func Example() {
	ctx := context.Background()

	store := blobstore.NewMemoryStore()
	_ = store.Put(ctx, "expected.csv", []byte("id,name\n1,alpha\n2,beta\n"))
	_ = store.Put(ctx, "actual.csv", []byte("id,name\n1,alpha\n3,gamma\n"))

	result, err := csvdiff.Compare(ctx, store, csvdiff.Source{
		Expected: "expected.csv",
		Actual:   "actual.csv",
	})
	if err != nil {
		log.Fatal(err)
	}

	s := result.Summary()
	fmt.Printf("kept=%d deleted=%d inserted=%d modified=%d\n", s.Kept, s.Deleted, s.Inserted, s.Modified)
	// Output: kept=1 deleted=1 inserted=1 modified=0
}

// Example_options demonstrates tuning the comparison with functional options.
func Example_options() {
	ctx := context.Background()

	store := blobstore.NewMemoryStore()
	_ = store.Put(ctx, "expected.csv", []byte("alpha;1\nbeta;2\n"))
	_ = store.Put(ctx, "actual.csv", []byte("alpha;1\nbeta;9\n"))

	result, err := csvdiff.Compare(ctx, store, csvdiff.Source{
		Expected: "expected.csv",
		Actual:   "actual.csv",
	},
		csvdiff.WithDelimiter(';'),    // Semicolon-separated input
		csvdiff.WithoutHeader(),       // First row is data, not a header
		csvdiff.WithIdentityColumn(0)) // Match rows on the first column
	if err != nil {
		log.Fatal(err)
	}

	for _, row := range result.RowsModified() {
		fmt.Println(row)
	}
	// Output: [beta 9]
}

// Example_observer demonstrates receiving row events as they are classified.
func Example_observer() {
	ctx := context.Background()

	store := blobstore.NewMemoryStore()
	_ = store.Put(ctx, "expected.csv", []byte("id,name\n1,alpha\n"))
	_ = store.Put(ctx, "actual.csv", []byte("id,name\n1,alpha\n2,beta\n"))

	_, err := csvdiff.Compare(ctx, store, csvdiff.Source{
		Expected: "expected.csv",
		Actual:   "actual.csv",
	}, csvdiff.WithObserver(printObserver{}))
	if err != nil {
		log.Fatal(err)
	}
	// Output:
	// kept [1 alpha]
	// inserted [2 beta]
}

type printObserver struct {
	csvdiff.NoopObserver
}

func (printObserver) RowKept(row, _ []string) {
	fmt.Println("kept", row)
}

func (printObserver) RowInserted(row, _ []string) {
	fmt.Println("inserted", row)
}
