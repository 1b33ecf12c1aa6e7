package emails

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/ent/scheduledemaillog"
	"github.com/google/uuid"
)

// ErrStorageNotConfigured is returned when attachment operations are invoked
// without an object storage backend.
var ErrStorageNotConfigured = errors.New("attachment storage not configured")

// AddAttachment uploads content to object storage and records the attachment
// against the email. The object key embeds a fresh UUID so same-named files
// never collide.
func (c *Controller) AddAttachment(ctx context.Context, email *ent.ScheduledEmail, filename string, content []byte) (*ent.EmailAttachment, error) {
	if c.storage == nil {
		return nil, ErrStorageNotConfigured
	}

	path := fmt.Sprintf("%s/%s-%s", email.ID, uuid.New(), filename)
	if err := c.storage.Upload(ctx, c.bucket, path, content); err != nil {
		return nil, fmt.Errorf("failed to upload attachment: %w", err)
	}

	var attachment *ent.EmailAttachment
	err := c.withTx(ctx, func(tx *ent.Tx) error {
		var err error
		attachment, err = tx.EmailAttachment.Create().
			SetFilename(filename).
			SetS3Bucket(c.bucket).
			SetS3Path(path).
			SetScheduledEmailID(email.ID).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create attachment: %w", err)
		}

		if _, err := tx.ScheduledEmailLog.Create().
			SetDetails(fmt.Sprintf("Attachment %q added", filename)).
			SetStateBefore(scheduledemaillog.StateBefore(email.State)).
			SetStateAfter(scheduledemaillog.StateAfter(email.State)).
			SetScheduledEmailID(email.ID).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to write log entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.log.Info("attachment added", "email_id", email.ID, "filename", filename, "path", path)
	return attachment, nil
}

// GeneratePresignedURL creates a time-limited download URL for the attachment
// and caches it on the row alongside its expiration.
func (c *Controller) GeneratePresignedURL(ctx context.Context, attachment *ent.EmailAttachment, ttl time.Duration) (*ent.EmailAttachment, error) {
	if c.storage == nil {
		return nil, ErrStorageNotConfigured
	}

	url, expiration, err := c.storage.PresignURL(ctx, attachment.S3Bucket, attachment.S3Path, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to presign attachment URL: %w", err)
	}

	updated, err := c.client.EmailAttachment.UpdateOneID(attachment.ID).
		SetPresignedURL(url).
		SetPresignedURLExpiration(expiration).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store presigned URL: %w", err)
	}
	return updated, nil
}
