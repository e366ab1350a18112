package domain

// PushInput describes a secret to encrypt and upload.
type PushInput struct {
	Name   string
	S3Path string
	// Value is zeroed by Push once encrypted.
	Value []byte
	// Recipients are additional age public keys that may decrypt the record.
	Recipients  []string
	Force       bool
	Description string
	Tags        map[string]string
}

// SyncInput parameterizes a sync run.
type SyncInput struct {
	Locals       []LocalSecret
	Direction    SyncDirection
	DryRun       bool
	DeleteRemote bool
}
