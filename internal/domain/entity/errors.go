package entity

import "fmt"

// SearchError reports a non-success status from the live pricing API. Nothing
// is persisted for the failed search.
type SearchError struct {
	StatusCode int
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("flight search failed with upstream status %d", e.StatusCode)
}

// LookupError reports a required related entity that does not exist at
// materialization time. It indicates a violated ordering invariant and is not
// recoverable.
type LookupError struct {
	Entity string
	Key    interface{}
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.Key)
}

// MalformedRecordError reports a raw record missing an expected field
type MalformedRecordError struct {
	Record string
	Field  string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed %s record: missing %s", e.Record, e.Field)
}
