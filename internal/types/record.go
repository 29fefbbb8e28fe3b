package types

import "time"

// Record is any row synchronized from upstream, typed or generic. RecordID is
// the stable numeric id used for upserts and reconciliation (the compound
// identifier's numeric suffix for typed records, the generated primary key
// for generic ones).
type Record interface {
	RecordID() int64
	FetchedAt() time.Time
}
