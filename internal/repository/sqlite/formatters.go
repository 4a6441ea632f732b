package sqlite

import (
	"database/sql"
)

// NullableString converts an optional string into a value bindable as a nullable column.
func NullableString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// StringPtrFromNull converts a scanned nullable column back into an optional string.
func StringPtrFromNull(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	value := ns.String
	return &value
}
