// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/carpentries/mailflow/ent/award"
	"github.com/carpentries/mailflow/ent/emailattachment"
	"github.com/carpentries/mailflow/ent/emailtemplate"
	"github.com/carpentries/mailflow/ent/event"
	"github.com/carpentries/mailflow/ent/membership"
	"github.com/carpentries/mailflow/ent/membershiptask"
	"github.com/carpentries/mailflow/ent/organization"
	"github.com/carpentries/mailflow/ent/person"
	"github.com/carpentries/mailflow/ent/scheduledemail"
	"github.com/carpentries/mailflow/ent/scheduledemaillog"
	"github.com/carpentries/mailflow/ent/schema"
	"github.com/carpentries/mailflow/ent/task"
	"github.com/carpentries/mailflow/ent/trainingprogress"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	awardFields := schema.Award{}.Fields()
	_ = awardFields
	// awardDescBadge is the schema descriptor for badge field.
	awardDescBadge := awardFields[0].Descriptor()
	// award.BadgeValidator is a validator for the "badge" field. It is called by the builders before save.
	award.BadgeValidator = func() func(string) error {
		validators := awardDescBadge.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(badge string) error {
			for _, fn := range fns {
				if err := fn(badge); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// awardDescAwarded is the schema descriptor for awarded field.
	awardDescAwarded := awardFields[1].Descriptor()
	// award.DefaultAwarded holds the default value on creation for the awarded field.
	award.DefaultAwarded = awardDescAwarded.Default.(func() time.Time)
	emailattachmentFields := schema.EmailAttachment{}.Fields()
	_ = emailattachmentFields
	// emailattachmentDescFilename is the schema descriptor for filename field.
	emailattachmentDescFilename := emailattachmentFields[1].Descriptor()
	// emailattachment.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	emailattachment.FilenameValidator = func() func(string) error {
		validators := emailattachmentDescFilename.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(filename string) error {
			for _, fn := range fns {
				if err := fn(filename); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// emailattachmentDescS3Bucket is the schema descriptor for s3_bucket field.
	emailattachmentDescS3Bucket := emailattachmentFields[2].Descriptor()
	// emailattachment.S3BucketValidator is a validator for the "s3_bucket" field. It is called by the builders before save.
	emailattachment.S3BucketValidator = emailattachmentDescS3Bucket.Validators[0].(func(string) error)
	// emailattachmentDescS3Path is the schema descriptor for s3_path field.
	emailattachmentDescS3Path := emailattachmentFields[3].Descriptor()
	// emailattachment.S3PathValidator is a validator for the "s3_path" field. It is called by the builders before save.
	emailattachment.S3PathValidator = emailattachmentDescS3Path.Validators[0].(func(string) error)
	// emailattachmentDescPresignedURL is the schema descriptor for presigned_url field.
	emailattachmentDescPresignedURL := emailattachmentFields[4].Descriptor()
	// emailattachment.DefaultPresignedURL holds the default value on creation for the presigned_url field.
	emailattachment.DefaultPresignedURL = emailattachmentDescPresignedURL.Default.(string)
	// emailattachmentDescCreatedAt is the schema descriptor for created_at field.
	emailattachmentDescCreatedAt := emailattachmentFields[7].Descriptor()
	// emailattachment.DefaultCreatedAt holds the default value on creation for the created_at field.
	emailattachment.DefaultCreatedAt = emailattachmentDescCreatedAt.Default.(func() time.Time)
	// emailattachmentDescUpdatedAt is the schema descriptor for updated_at field.
	emailattachmentDescUpdatedAt := emailattachmentFields[8].Descriptor()
	// emailattachment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	emailattachment.DefaultUpdatedAt = emailattachmentDescUpdatedAt.Default.(func() time.Time)
	// emailattachment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	emailattachment.UpdateDefaultUpdatedAt = emailattachmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// emailattachmentDescID is the schema descriptor for id field.
	emailattachmentDescID := emailattachmentFields[0].Descriptor()
	// emailattachment.DefaultID holds the default value on creation for the id field.
	emailattachment.DefaultID = emailattachmentDescID.Default.(func() uuid.UUID)
	emailtemplateFields := schema.EmailTemplate{}.Fields()
	_ = emailtemplateFields
	// emailtemplateDescName is the schema descriptor for name field.
	emailtemplateDescName := emailtemplateFields[1].Descriptor()
	// emailtemplate.NameValidator is a validator for the "name" field. It is called by the builders before save.
	emailtemplate.NameValidator = func() func(string) error {
		validators := emailtemplateDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// emailtemplateDescSignal is the schema descriptor for signal field.
	emailtemplateDescSignal := emailtemplateFields[2].Descriptor()
	// emailtemplate.SignalValidator is a validator for the "signal" field. It is called by the builders before save.
	emailtemplate.SignalValidator = func() func(string) error {
		validators := emailtemplateDescSignal.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(signal string) error {
			for _, fn := range fns {
				if err := fn(signal); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// emailtemplateDescActive is the schema descriptor for active field.
	emailtemplateDescActive := emailtemplateFields[3].Descriptor()
	// emailtemplate.DefaultActive holds the default value on creation for the active field.
	emailtemplate.DefaultActive = emailtemplateDescActive.Default.(bool)
	// emailtemplateDescFromHeader is the schema descriptor for from_header field.
	emailtemplateDescFromHeader := emailtemplateFields[4].Descriptor()
	// emailtemplate.FromHeaderValidator is a validator for the "from_header" field. It is called by the builders before save.
	emailtemplate.FromHeaderValidator = emailtemplateDescFromHeader.Validators[0].(func(string) error)
	// emailtemplateDescReplyToHeader is the schema descriptor for reply_to_header field.
	emailtemplateDescReplyToHeader := emailtemplateFields[5].Descriptor()
	// emailtemplate.DefaultReplyToHeader holds the default value on creation for the reply_to_header field.
	emailtemplate.DefaultReplyToHeader = emailtemplateDescReplyToHeader.Default.(string)
	// emailtemplateDescSubject is the schema descriptor for subject field.
	emailtemplateDescSubject := emailtemplateFields[8].Descriptor()
	// emailtemplate.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	emailtemplate.SubjectValidator = func() func(string) error {
		validators := emailtemplateDescSubject.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(subject string) error {
			for _, fn := range fns {
				if err := fn(subject); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// emailtemplateDescBody is the schema descriptor for body field.
	emailtemplateDescBody := emailtemplateFields[9].Descriptor()
	// emailtemplate.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	emailtemplate.BodyValidator = emailtemplateDescBody.Validators[0].(func(string) error)
	// emailtemplateDescCreatedAt is the schema descriptor for created_at field.
	emailtemplateDescCreatedAt := emailtemplateFields[10].Descriptor()
	// emailtemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	emailtemplate.DefaultCreatedAt = emailtemplateDescCreatedAt.Default.(func() time.Time)
	// emailtemplateDescUpdatedAt is the schema descriptor for updated_at field.
	emailtemplateDescUpdatedAt := emailtemplateFields[11].Descriptor()
	// emailtemplate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	emailtemplate.DefaultUpdatedAt = emailtemplateDescUpdatedAt.Default.(func() time.Time)
	// emailtemplate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	emailtemplate.UpdateDefaultUpdatedAt = emailtemplateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// emailtemplateDescID is the schema descriptor for id field.
	emailtemplateDescID := emailtemplateFields[0].Descriptor()
	// emailtemplate.DefaultID holds the default value on creation for the id field.
	emailtemplate.DefaultID = emailtemplateDescID.Default.(func() uuid.UUID)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescSlug is the schema descriptor for slug field.
	eventDescSlug := eventFields[0].Descriptor()
	// event.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	event.SlugValidator = func() func(string) error {
		validators := eventDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// eventDescURL is the schema descriptor for url field.
	eventDescURL := eventFields[3].Descriptor()
	// event.DefaultURL holds the default value on creation for the url field.
	event.DefaultURL = eventDescURL.Default.(string)
	// eventDescOpenRecruitment is the schema descriptor for open_recruitment field.
	eventDescOpenRecruitment := eventFields[5].Descriptor()
	// event.DefaultOpenRecruitment holds the default value on creation for the open_recruitment field.
	event.DefaultOpenRecruitment = eventDescOpenRecruitment.Default.(bool)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[7].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	membershipFields := schema.Membership{}.Fields()
	_ = membershipFields
	// membershipDescName is the schema descriptor for name field.
	membershipDescName := membershipFields[0].Descriptor()
	// membership.NameValidator is a validator for the "name" field. It is called by the builders before save.
	membership.NameValidator = func() func(string) error {
		validators := membershipDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// membershipDescCreatedAt is the schema descriptor for created_at field.
	membershipDescCreatedAt := membershipFields[5].Descriptor()
	// membership.DefaultCreatedAt holds the default value on creation for the created_at field.
	membership.DefaultCreatedAt = membershipDescCreatedAt.Default.(func() time.Time)
	membershiptaskFields := schema.MembershipTask{}.Fields()
	_ = membershiptaskFields
	// membershiptaskDescCreatedAt is the schema descriptor for created_at field.
	membershiptaskDescCreatedAt := membershiptaskFields[3].Descriptor()
	// membershiptask.DefaultCreatedAt holds the default value on creation for the created_at field.
	membershiptask.DefaultCreatedAt = membershiptaskDescCreatedAt.Default.(func() time.Time)
	organizationFields := schema.Organization{}.Fields()
	_ = organizationFields
	// organizationDescFullname is the schema descriptor for fullname field.
	organizationDescFullname := organizationFields[0].Descriptor()
	// organization.FullnameValidator is a validator for the "fullname" field. It is called by the builders before save.
	organization.FullnameValidator = func() func(string) error {
		validators := organizationDescFullname.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(fullname string) error {
			for _, fn := range fns {
				if err := fn(fullname); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// organizationDescDomain is the schema descriptor for domain field.
	organizationDescDomain := organizationFields[1].Descriptor()
	// organization.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	organization.DomainValidator = func() func(string) error {
		validators := organizationDescDomain.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(domain string) error {
			for _, fn := range fns {
				if err := fn(domain); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// organizationDescCreatedAt is the schema descriptor for created_at field.
	organizationDescCreatedAt := organizationFields[2].Descriptor()
	// organization.DefaultCreatedAt holds the default value on creation for the created_at field.
	organization.DefaultCreatedAt = organizationDescCreatedAt.Default.(func() time.Time)
	personFields := schema.Person{}.Fields()
	_ = personFields
	// personDescPersonal is the schema descriptor for personal field.
	personDescPersonal := personFields[0].Descriptor()
	// person.PersonalValidator is a validator for the "personal" field. It is called by the builders before save.
	person.PersonalValidator = func() func(string) error {
		validators := personDescPersonal.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(personal string) error {
			for _, fn := range fns {
				if err := fn(personal); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// personDescFamily is the schema descriptor for family field.
	personDescFamily := personFields[1].Descriptor()
	// person.DefaultFamily holds the default value on creation for the family field.
	person.DefaultFamily = personDescFamily.Default.(string)
	// person.FamilyValidator is a validator for the "family" field. It is called by the builders before save.
	person.FamilyValidator = personDescFamily.Validators[0].(func(string) error)
	// personDescEmail is the schema descriptor for email field.
	personDescEmail := personFields[2].Descriptor()
	// person.DefaultEmail holds the default value on creation for the email field.
	person.DefaultEmail = personDescEmail.Default.(string)
	// person.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	person.EmailValidator = personDescEmail.Validators[0].(func(string) error)
	// personDescCreatedAt is the schema descriptor for created_at field.
	personDescCreatedAt := personFields[3].Descriptor()
	// person.DefaultCreatedAt holds the default value on creation for the created_at field.
	person.DefaultCreatedAt = personDescCreatedAt.Default.(func() time.Time)
	scheduledemailFields := schema.ScheduledEmail{}.Fields()
	_ = scheduledemailFields
	// scheduledemailDescFromHeader is the schema descriptor for from_header field.
	scheduledemailDescFromHeader := scheduledemailFields[4].Descriptor()
	// scheduledemail.FromHeaderValidator is a validator for the "from_header" field. It is called by the builders before save.
	scheduledemail.FromHeaderValidator = scheduledemailDescFromHeader.Validators[0].(func(string) error)
	// scheduledemailDescReplyToHeader is the schema descriptor for reply_to_header field.
	scheduledemailDescReplyToHeader := scheduledemailFields[5].Descriptor()
	// scheduledemail.DefaultReplyToHeader holds the default value on creation for the reply_to_header field.
	scheduledemail.DefaultReplyToHeader = scheduledemailDescReplyToHeader.Default.(string)
	// scheduledemailDescSubject is the schema descriptor for subject field.
	scheduledemailDescSubject := scheduledemailFields[8].Descriptor()
	// scheduledemail.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	scheduledemail.SubjectValidator = func() func(string) error {
		validators := scheduledemailDescSubject.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(subject string) error {
			for _, fn := range fns {
				if err := fn(subject); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// scheduledemailDescBody is the schema descriptor for body field.
	scheduledemailDescBody := scheduledemailFields[9].Descriptor()
	// scheduledemail.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	scheduledemail.BodyValidator = scheduledemailDescBody.Validators[0].(func(string) error)
	// scheduledemailDescCreatedAt is the schema descriptor for created_at field.
	scheduledemailDescCreatedAt := scheduledemailFields[15].Descriptor()
	// scheduledemail.DefaultCreatedAt holds the default value on creation for the created_at field.
	scheduledemail.DefaultCreatedAt = scheduledemailDescCreatedAt.Default.(func() time.Time)
	// scheduledemailDescUpdatedAt is the schema descriptor for updated_at field.
	scheduledemailDescUpdatedAt := scheduledemailFields[16].Descriptor()
	// scheduledemail.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	scheduledemail.DefaultUpdatedAt = scheduledemailDescUpdatedAt.Default.(func() time.Time)
	// scheduledemail.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	scheduledemail.UpdateDefaultUpdatedAt = scheduledemailDescUpdatedAt.UpdateDefault.(func() time.Time)
	// scheduledemailDescID is the schema descriptor for id field.
	scheduledemailDescID := scheduledemailFields[0].Descriptor()
	// scheduledemail.DefaultID holds the default value on creation for the id field.
	scheduledemail.DefaultID = scheduledemailDescID.Default.(func() uuid.UUID)
	scheduledemaillogFields := schema.ScheduledEmailLog{}.Fields()
	_ = scheduledemaillogFields
	// scheduledemaillogDescDetails is the schema descriptor for details field.
	scheduledemaillogDescDetails := scheduledemaillogFields[1].Descriptor()
	// scheduledemaillog.DetailsValidator is a validator for the "details" field. It is called by the builders before save.
	scheduledemaillog.DetailsValidator = func() func(string) error {
		validators := scheduledemaillogDescDetails.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(details string) error {
			for _, fn := range fns {
				if err := fn(details); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// scheduledemaillogDescCreatedAt is the schema descriptor for created_at field.
	scheduledemaillogDescCreatedAt := scheduledemaillogFields[6].Descriptor()
	// scheduledemaillog.DefaultCreatedAt holds the default value on creation for the created_at field.
	scheduledemaillog.DefaultCreatedAt = scheduledemaillogDescCreatedAt.Default.(func() time.Time)
	// scheduledemaillogDescID is the schema descriptor for id field.
	scheduledemaillogDescID := scheduledemaillogFields[0].Descriptor()
	// scheduledemaillog.DefaultID holds the default value on creation for the id field.
	scheduledemaillog.DefaultID = scheduledemaillogDescID.Default.(func() uuid.UUID)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[3].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	trainingprogressFields := schema.TrainingProgress{}.Fields()
	_ = trainingprogressFields
	// trainingprogressDescCreatedAt is the schema descriptor for created_at field.
	trainingprogressDescCreatedAt := trainingprogressFields[3].Descriptor()
	// trainingprogress.DefaultCreatedAt holds the default value on creation for the created_at field.
	trainingprogress.DefaultCreatedAt = trainingprogressDescCreatedAt.Default.(func() time.Time)
}
