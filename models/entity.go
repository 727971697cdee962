package models

// Entity is implemented by every persisted model with a numeric primary key.
// The generic repository relies on it to reach the key without reflection.
type Entity interface {
	PrimaryKey() uint
}
