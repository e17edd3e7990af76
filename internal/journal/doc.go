// Package journal persists organize runs and individual file moves in
// SQLite so `tidy history` can show what past runs did.
//
// The database is an audit trail, not an undo log: nothing in the tool reads
// it to reverse moves. Schema changes bump the version in schema.go; users
// delete the database to adopt the new schema.
package journal
