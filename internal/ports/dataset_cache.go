package ports

import "github.com/bnema/petition-tracker/internal/domain"

// DatasetCache keeps every series fetched during a session. Entries are only
// dropped by Reset.
type DatasetCache interface {
	Get(key domain.DatasetKey) (domain.Dataset, bool)
	Put(key domain.DatasetKey, dataset domain.Dataset)
	Reset()
	Len() int
}
