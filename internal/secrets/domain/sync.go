package domain

import (
	"fmt"
	"time"
)

// SyncDirection selects which side sync writes to.
type SyncDirection string

const (
	SyncPush SyncDirection = "push"
	SyncPull SyncDirection = "pull"
	SyncBoth SyncDirection = "both"
)

// ParseSyncDirection converts a CLI flag value.
func ParseSyncDirection(value string) (SyncDirection, error) {
	switch SyncDirection(value) {
	case SyncPush, SyncPull, SyncBoth:
		return SyncDirection(value), nil
	default:
		return "", fmt.Errorf("%w: invalid sync direction %q (valid options: push, pull, both)", ErrConfig, value)
	}
}

// LocalSecret is a manifest secret eligible for S3 sync.
// Value is only required for secrets that will be pushed.
type LocalSecret struct {
	Name   string
	S3Path string
	Value  *SecretValue
}

// SyncFailure records a path that could not be synced.
type SyncFailure struct {
	Path   string
	Reason string
}

// SyncResult classifies paths and records what a sync run did.
type SyncResult struct {
	ToPush    []string
	ToPull    []string
	InSync    []string
	Conflicts []string

	Pushed  []string
	Pulled  []string
	Deleted []string
	Failed  []SyncFailure
}

// SecretVersion is one object version of a stored secret.
type SecretVersion struct {
	VersionID    string
	LastModified time.Time
	IsLatest     bool
	Size         int64
}
