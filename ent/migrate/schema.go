// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AwardsColumns holds the columns for the "awards" table.
	AwardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "badge", Type: field.TypeString, Size: 255},
		{Name: "awarded", Type: field.TypeTime},
		{Name: "person_id", Type: field.TypeInt},
	}
	// AwardsTable holds the schema information for the "awards" table.
	AwardsTable = &schema.Table{
		Name:       "awards",
		Columns:    AwardsColumns,
		PrimaryKey: []*schema.Column{AwardsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "awards_persons_awards",
				Columns:    []*schema.Column{AwardsColumns[3]},
				RefColumns: []*schema.Column{PersonsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "award_person_id_badge",
				Unique:  true,
				Columns: []*schema.Column{AwardsColumns[3], AwardsColumns[1]},
			},
		},
	}
	// EmailAttachmentsColumns holds the columns for the "email_attachments" table.
	EmailAttachmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString, Size: 255},
		{Name: "s3_bucket", Type: field.TypeString},
		{Name: "s3_path", Type: field.TypeString},
		{Name: "presigned_url", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "presigned_url_expiration", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "scheduled_email_id", Type: field.TypeUUID},
	}
	// EmailAttachmentsTable holds the schema information for the "email_attachments" table.
	EmailAttachmentsTable = &schema.Table{
		Name:       "email_attachments",
		Columns:    EmailAttachmentsColumns,
		PrimaryKey: []*schema.Column{EmailAttachmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "email_attachments_scheduled_emails_attachments",
				Columns:    []*schema.Column{EmailAttachmentsColumns[8]},
				RefColumns: []*schema.Column{ScheduledEmailsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// EmailTemplatesColumns holds the columns for the "email_templates" table.
	EmailTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "signal", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "from_header", Type: field.TypeString},
		{Name: "reply_to_header", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "cc_header", Type: field.TypeJSON, Nullable: true},
		{Name: "bcc_header", Type: field.TypeJSON, Nullable: true},
		{Name: "subject", Type: field.TypeString, Size: 255},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// EmailTemplatesTable holds the schema information for the "email_templates" table.
	EmailTemplatesTable = &schema.Table{
		Name:       "email_templates",
		Columns:    EmailTemplatesColumns,
		PrimaryKey: []*schema.Column{EmailTemplatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "emailtemplate_signal",
				Unique:  false,
				Columns: []*schema.Column{EmailTemplatesColumns[2]},
			},
			{
				Name:    "emailtemplate_active",
				Unique:  false,
				Columns: []*schema.Column{EmailTemplatesColumns[3]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "start_date", Type: field.TypeTime, Nullable: true},
		{Name: "end_date", Type: field.TypeTime, Nullable: true},
		{Name: "url", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "open_recruitment", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "administrator_id", Type: field.TypeInt, Nullable: true},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_organizations_administered_events",
				Columns:    []*schema.Column{EventsColumns[8]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_start_date",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
			{
				Name:    "event_end_date",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// MembershipsColumns holds the columns for the "memberships" table.
	MembershipsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "variant", Type: field.TypeEnum, Enums: []string{"bronze", "silver", "gold", "platinum", "alacarte"}},
		{Name: "agreement_start", Type: field.TypeTime},
		{Name: "agreement_end", Type: field.TypeTime},
		{Name: "rolled_from_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MembershipsTable holds the schema information for the "memberships" table.
	MembershipsTable = &schema.Table{
		Name:       "memberships",
		Columns:    MembershipsColumns,
		PrimaryKey: []*schema.Column{MembershipsColumns[0]},
	}
	// MembershipTasksColumns holds the columns for the "membership_tasks" table.
	MembershipTasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"billing_contact", "programmatic_contact", "persons_of_interest"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "membership_id", Type: field.TypeInt},
		{Name: "person_id", Type: field.TypeInt},
	}
	// MembershipTasksTable holds the schema information for the "membership_tasks" table.
	MembershipTasksTable = &schema.Table{
		Name:       "membership_tasks",
		Columns:    MembershipTasksColumns,
		PrimaryKey: []*schema.Column{MembershipTasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "membership_tasks_memberships_membership_tasks",
				Columns:    []*schema.Column{MembershipTasksColumns[3]},
				RefColumns: []*schema.Column{MembershipsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "membership_tasks_persons_membership_tasks",
				Columns:    []*schema.Column{MembershipTasksColumns[4]},
				RefColumns: []*schema.Column{PersonsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "membershiptask_membership_id_role",
				Unique:  false,
				Columns: []*schema.Column{MembershipTasksColumns[3], MembershipTasksColumns[1]},
			},
		},
	}
	// OrganizationsColumns holds the columns for the "organizations" table.
	OrganizationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "fullname", Type: field.TypeString, Size: 255},
		{Name: "domain", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "created_at", Type: field.TypeTime},
	}
	// OrganizationsTable holds the schema information for the "organizations" table.
	OrganizationsTable = &schema.Table{
		Name:       "organizations",
		Columns:    OrganizationsColumns,
		PrimaryKey: []*schema.Column{OrganizationsColumns[0]},
	}
	// PersonsColumns holds the columns for the "persons" table.
	PersonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "personal", Type: field.TypeString, Size: 255},
		{Name: "family", Type: field.TypeString, Nullable: true, Size: 255, Default: ""},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PersonsTable holds the schema information for the "persons" table.
	PersonsTable = &schema.Table{
		Name:       "persons",
		Columns:    PersonsColumns,
		PrimaryKey: []*schema.Column{PersonsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "person_email",
				Unique:  false,
				Columns: []*schema.Column{PersonsColumns[3]},
			},
		},
	}
	// ScheduledEmailsColumns holds the columns for the "scheduled_emails" table.
	ScheduledEmailsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"scheduled", "locked", "running", "succeeded", "failed", "cancelled"}, Default: "scheduled"},
		{Name: "scheduled_at", Type: field.TypeTime},
		{Name: "to_header", Type: field.TypeJSON},
		{Name: "from_header", Type: field.TypeString},
		{Name: "reply_to_header", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "cc_header", Type: field.TypeJSON, Nullable: true},
		{Name: "bcc_header", Type: field.TypeJSON, Nullable: true},
		{Name: "subject", Type: field.TypeString, Size: 255},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "context_json", Type: field.TypeJSON},
		{Name: "to_header_context_json", Type: field.TypeJSON},
		{Name: "related_to", Type: field.TypeEnum, Nullable: true, Enums: []string{"event", "person", "membership", "award", "task"}},
		{Name: "related_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "template_id", Type: field.TypeUUID, Nullable: true},
	}
	// ScheduledEmailsTable holds the schema information for the "scheduled_emails" table.
	ScheduledEmailsTable = &schema.Table{
		Name:       "scheduled_emails",
		Columns:    ScheduledEmailsColumns,
		PrimaryKey: []*schema.Column{ScheduledEmailsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scheduled_emails_email_templates_scheduled_emails",
				Columns:    []*schema.Column{ScheduledEmailsColumns[16]},
				RefColumns: []*schema.Column{EmailTemplatesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scheduledemail_state_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{ScheduledEmailsColumns[1], ScheduledEmailsColumns[2]},
			},
			{
				Name:    "scheduledemail_related_to_related_id",
				Unique:  false,
				Columns: []*schema.Column{ScheduledEmailsColumns[12], ScheduledEmailsColumns[13]},
			},
		},
	}
	// ScheduledEmailLogsColumns holds the columns for the "scheduled_email_logs" table.
	ScheduledEmailLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "details", Type: field.TypeString, Size: 255},
		{Name: "state_before", Type: field.TypeEnum, Nullable: true, Enums: []string{"scheduled", "locked", "running", "succeeded", "failed", "cancelled"}},
		{Name: "state_after", Type: field.TypeEnum, Enums: []string{"scheduled", "locked", "running", "succeeded", "failed", "cancelled"}},
		{Name: "author_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "scheduled_email_id", Type: field.TypeUUID},
	}
	// ScheduledEmailLogsTable holds the schema information for the "scheduled_email_logs" table.
	ScheduledEmailLogsTable = &schema.Table{
		Name:       "scheduled_email_logs",
		Columns:    ScheduledEmailLogsColumns,
		PrimaryKey: []*schema.Column{ScheduledEmailLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scheduled_email_logs_scheduled_emails_logs",
				Columns:    []*schema.Column{ScheduledEmailLogsColumns[6]},
				RefColumns: []*schema.Column{ScheduledEmailsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scheduledemaillog_scheduled_email_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ScheduledEmailLogsColumns[6], ScheduledEmailLogsColumns[5]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"instructor", "host", "helper", "learner", "supporting_instructor"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "event_id", Type: field.TypeInt},
		{Name: "person_id", Type: field.TypeInt},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_events_event_tasks",
				Columns:    []*schema.Column{TasksColumns[3]},
				RefColumns: []*schema.Column{EventsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "tasks_persons_tasks",
				Columns:    []*schema.Column{TasksColumns[4]},
				RefColumns: []*schema.Column{PersonsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_event_id_role",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[3], TasksColumns[1]},
			},
			{
				Name:    "task_event_id_person_id_role",
				Unique:  true,
				Columns: []*schema.Column{TasksColumns[3], TasksColumns[4], TasksColumns[1]},
			},
		},
	}
	// TrainingProgressesColumns holds the columns for the "training_progresses" table.
	TrainingProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "requirement", Type: field.TypeEnum, Enums: []string{"training", "get_involved", "welcome", "demo"}},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"passed", "failed", "asked_to_repeat"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "person_id", Type: field.TypeInt},
	}
	// TrainingProgressesTable holds the schema information for the "training_progresses" table.
	TrainingProgressesTable = &schema.Table{
		Name:       "training_progresses",
		Columns:    TrainingProgressesColumns,
		PrimaryKey: []*schema.Column{TrainingProgressesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "training_progresses_persons_training_progresses",
				Columns:    []*schema.Column{TrainingProgressesColumns[4]},
				RefColumns: []*schema.Column{PersonsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "trainingprogress_person_id_requirement",
				Unique:  false,
				Columns: []*schema.Column{TrainingProgressesColumns[4], TrainingProgressesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AwardsTable,
		EmailAttachmentsTable,
		EmailTemplatesTable,
		EventsTable,
		MembershipsTable,
		MembershipTasksTable,
		OrganizationsTable,
		PersonsTable,
		ScheduledEmailsTable,
		ScheduledEmailLogsTable,
		TasksTable,
		TrainingProgressesTable,
	}
)

func init() {
	AwardsTable.ForeignKeys[0].RefTable = PersonsTable
	EmailAttachmentsTable.ForeignKeys[0].RefTable = ScheduledEmailsTable
	EventsTable.ForeignKeys[0].RefTable = OrganizationsTable
	MembershipTasksTable.ForeignKeys[0].RefTable = MembershipsTable
	MembershipTasksTable.ForeignKeys[1].RefTable = PersonsTable
	ScheduledEmailsTable.ForeignKeys[0].RefTable = EmailTemplatesTable
	ScheduledEmailLogsTable.ForeignKeys[0].RefTable = ScheduledEmailsTable
	TasksTable.ForeignKeys[0].RefTable = EventsTable
	TasksTable.ForeignKeys[1].RefTable = PersonsTable
	TrainingProgressesTable.ForeignKeys[0].RefTable = PersonsTable
}
