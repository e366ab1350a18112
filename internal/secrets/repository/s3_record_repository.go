package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	cryptoDomain "github.com/sindri-dev/secrets/internal/crypto/domain"
	"github.com/sindri-dev/secrets/internal/errors"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
)

// maxRecordSize bounds how much of an object body is read.
const maxRecordSize = 1 << 20

// S3RecordRepository stores one JSON EncryptedSecretRecord per object under a key prefix.
// The bucket is expected to have versioning enabled.
type S3RecordRepository struct {
	client S3API
	bucket string
	region string
	prefix string
}

// NewS3RecordRepository creates a repository over client.
func NewS3RecordRepository(client S3API, cfg S3Config) *S3RecordRepository {
	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}
	return &S3RecordRepository{
		client: client,
		bucket: cfg.Bucket,
		region: region,
		prefix: normalizePrefix(cfg.Prefix),
	}
}

// Bucket returns the bucket name.
func (r *S3RecordRepository) Bucket() string {
	return r.bucket
}

// Key returns the object key for a logical secret path.
func (r *S3RecordRepository) Key(path string) string {
	return r.prefix + strings.TrimPrefix(path, "/")
}

// Put uploads record and returns the new object version id.
func (r *S3RecordRepository) Put(
	ctx context.Context,
	path string,
	record *cryptoDomain.EncryptedSecretRecord,
) (string, error) {
	if err := record.Validate(); err != nil {
		return "", err
	}

	body, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to encode record")
	}

	key := r.Key(path)
	out, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:               aws.String(r.bucket),
		Key:                  aws.String(key),
		Body:                 bytes.NewReader(body),
		ContentType:          aws.String("application/json"),
		ServerSideEncryption: types.ServerSideEncryptionAes256,
	})
	if err != nil {
		return "", classify(err, "put", key)
	}
	return aws.ToString(out.VersionId), nil
}

// Get downloads the latest record at path along with its version id.
func (r *S3RecordRepository) Get(
	ctx context.Context,
	path string,
) (*cryptoDomain.EncryptedSecretRecord, string, error) {
	return r.get(ctx, path, "")
}

// GetVersion downloads a specific version of the record at path.
func (r *S3RecordRepository) GetVersion(
	ctx context.Context,
	path, versionID string,
) (*cryptoDomain.EncryptedSecretRecord, error) {
	record, _, err := r.get(ctx, path, versionID)
	return record, err
}

func (r *S3RecordRepository) get(
	ctx context.Context,
	path, versionID string,
) (*cryptoDomain.EncryptedSecretRecord, string, error) {
	key := r.Key(path)
	input := &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	}
	if versionID != "" {
		input.VersionId = aws.String(versionID)
	}

	out, err := r.client.GetObject(ctx, input)
	if err != nil {
		return nil, "", classify(err, "get", key)
	}
	defer func() {
		_ = out.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(out.Body, maxRecordSize))
	if err != nil {
		return nil, "", classify(err, "read", key)
	}

	// A stored body that no longer parses, or whose payload fields no longer decode,
	// has been altered and fails authentication like a tag mismatch.
	var record cryptoDomain.EncryptedSecretRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, "", fmt.Errorf("%w: %w: %s: %v", cryptoDomain.ErrDecryptionFailed, cryptoDomain.ErrInvalidRecord, key, err)
	}
	if err := record.ValidateHeader(); err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", cryptoDomain.ErrInvalidRecord, key, err)
	}
	if err := record.ValidateEncoding(); err != nil {
		return nil, "", fmt.Errorf("%w: %w: %s: %v", cryptoDomain.ErrDecryptionFailed, cryptoDomain.ErrInvalidRecord, key, err)
	}

	return &record, aws.ToString(out.VersionId), nil
}

// Exists reports whether an object is stored at path.
func (r *S3RecordRepository) Exists(ctx context.Context, path string) (bool, error) {
	_, err := r.Head(ctx, path)
	if err != nil {
		if errors.Is(err, secretsDomain.ErrSecretNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Head returns the current version id of the object at path.
func (r *S3RecordRepository) Head(ctx context.Context, path string) (string, error) {
	key := r.Key(path)
	out, err := r.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", classify(err, "head", key)
	}
	return aws.ToString(out.VersionId), nil
}

// List returns every logical secret path under the prefix, sorted.
func (r *S3RecordRepository) List(ctx context.Context) ([]string, error) {
	paginator := s3.NewListObjectsV2Paginator(r.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(r.bucket),
		Prefix: aws.String(r.prefix),
	})

	paths := []string{}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, classify(err, "list", r.prefix)
		}
		for _, object := range page.Contents {
			key := aws.ToString(object.Key)
			if strings.HasSuffix(key, "/") {
				continue
			}
			paths = append(paths, strings.TrimPrefix(key, r.prefix))
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// History returns every version of the object at path, newest first.
func (r *S3RecordRepository) History(ctx context.Context, path string) ([]secretsDomain.SecretVersion, error) {
	key := r.Key(path)
	input := &s3.ListObjectVersionsInput{
		Bucket: aws.String(r.bucket),
		Prefix: aws.String(key),
	}

	versions := []secretsDomain.SecretVersion{}
	for {
		out, err := r.client.ListObjectVersions(ctx, input)
		if err != nil {
			return nil, classify(err, "history", key)
		}
		for _, version := range out.Versions {
			if aws.ToString(version.Key) != key {
				continue
			}
			versions = append(versions, secretsDomain.SecretVersion{
				VersionID:    aws.ToString(version.VersionId),
				LastModified: aws.ToTime(version.LastModified),
				IsLatest:     aws.ToBool(version.IsLatest),
				Size:         aws.ToInt64(version.Size),
			})
		}
		if !aws.ToBool(out.IsTruncated) {
			break
		}
		input.KeyMarker = out.NextKeyMarker
		input.VersionIdMarker = out.NextVersionIdMarker
	}

	if len(versions) == 0 {
		return nil, fmt.Errorf("%w: no versions for %s", secretsDomain.ErrSecretNotFound, key)
	}

	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].LastModified.After(versions[j].LastModified)
	})
	return versions, nil
}

// Rollback copies versionID over the current object, creating a new version.
// Existing versions are never modified.
func (r *S3RecordRepository) Rollback(ctx context.Context, path, versionID string) (string, error) {
	if versionID == "" {
		return "", fmt.Errorf("%w: version id is required", secretsDomain.ErrConfig)
	}

	key := r.Key(path)
	out, err := r.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:               aws.String(r.bucket),
		Key:                  aws.String(key),
		CopySource:           aws.String(r.copySource(key, versionID)),
		ContentType:          aws.String("application/json"),
		MetadataDirective:    types.MetadataDirectiveReplace,
		ServerSideEncryption: types.ServerSideEncryptionAes256,
	})
	if err != nil {
		return "", classify(err, "rollback", key)
	}
	return aws.ToString(out.VersionId), nil
}

// Delete removes the object at path. On a versioned bucket this adds a delete marker.
func (r *S3RecordRepository) Delete(ctx context.Context, path string) error {
	key := r.Key(path)
	_, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return classify(err, "delete", key)
	}
	return nil
}

// EnsureBucket checks that the bucket is reachable. When create is true a missing
// bucket is created with versioning enabled.
func (r *S3RecordRepository) EnsureBucket(ctx context.Context, create bool) error {
	_, err := r.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(r.bucket)})
	if err == nil {
		return nil
	}

	classified := classify(err, "head bucket", r.bucket)
	if !errors.Is(classified, secretsDomain.ErrSecretNotFound) || !create {
		return classified
	}

	input := &s3.CreateBucketInput{Bucket: aws.String(r.bucket)}
	if r.region != defaultRegion {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(r.region),
		}
	}
	if _, err := r.client.CreateBucket(ctx, input); err != nil {
		return classify(err, "create bucket", r.bucket)
	}

	_, err = r.client.PutBucketVersioning(ctx, &s3.PutBucketVersioningInput{
		Bucket: aws.String(r.bucket),
		VersioningConfiguration: &types.VersioningConfiguration{
			Status: types.BucketVersioningStatusEnabled,
		},
	})
	if err != nil {
		return classify(err, "enable versioning", r.bucket)
	}
	return nil
}

func (r *S3RecordRepository) copySource(key, versionID string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return r.bucket + "/" + strings.Join(segments, "/") + "?versionId=" + url.QueryEscape(versionID)
}
