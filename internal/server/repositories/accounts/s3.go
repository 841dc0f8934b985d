package accounts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
)

// S3API is the subset of *s3.Client used by S3Repository.
type S3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Repository stores one JSON object per account. Inserts use a
// conditional PUT (If-None-Match: *) so the bucket enforces uniqueness.
type S3Repository struct {
	client S3API
	bucket string
	prefix string
}

type s3Account struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	CredentialRecord string    `json:"credential_record"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewS3Repository(client S3API, bucket, prefix string) *S3Repository {
	return &S3Repository{client: client, bucket: bucket, prefix: prefix}
}

func (r *S3Repository) objectKey(username string) string {
	return r.prefix + "accounts/" + url.PathEscape(username) + ".json"
}

func (r *S3Repository) GetAccount(ctx context.Context, username string) (*models.Account, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.objectKey(username)),
	})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("s3 error: %w", err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("s3 error: %w", err)
	}

	var a s3Account
	if err := json.Unmarshal(body, &a); err != nil {
		return nil, fmt.Errorf("decode account %s: %w", username, err)
	}

	return &models.Account{
		ID:               a.ID,
		Username:         a.Username,
		CredentialRecord: a.CredentialRecord,
		CreatedAt:        a.CreatedAt,
	}, nil
}

func (r *S3Repository) SaveAccount(ctx context.Context, account *models.Account) error {
	body, err := json.Marshal(s3Account{
		ID:               account.ID,
		Username:         account.Username,
		CredentialRecord: account.CredentialRecord,
		CreatedAt:        account.CreatedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode account %s: %w", account.Username, err)
	}

	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(r.objectKey(account.Username)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
		IfNoneMatch: aws.String("*"),
	})
	if err != nil {
		if isPreconditionFailed(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("s3 error: %w", err)
	}
	return nil
}

func (r *S3Repository) DeleteAccount(ctx context.Context, username string) error {
	_, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.objectKey(username)),
	})
	if err != nil && !isNoSuchKey(err) {
		return fmt.Errorf("s3 error: %w", err)
	}
	return nil
}

func isNoSuchKey(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NoSuchKey" || apiErr.ErrorCode() == "NotFound")
}

// isPreconditionFailed matches the 412 returned when If-None-Match finds an
// existing object, and the 409 returned for a concurrent conditional write.
func isPreconditionFailed(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "PreconditionFailed", "ConditionalRequestConflict":
		return true
	}
	return false
}
