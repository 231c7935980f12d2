package dtypes

import "github.com/ipfs/go-datastore"

// MetadataDS holds the account state of the node. It is the repo datastore;
// the state tree namespaces its own keys inside it.
type MetadataDS datastore.Batching
