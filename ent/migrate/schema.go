// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdminUsersColumns holds the columns for the "admin_users" table.
	AdminUsersColumns = []*schema.Column{
		{Name: "admin_user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AdminUsersTable holds the schema information for the "admin_users" table.
	AdminUsersTable = &schema.Table{
		Name:       "admin_users",
		Columns:    AdminUsersColumns,
		PrimaryKey: []*schema.Column{AdminUsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "adminuser_email",
				Unique:  true,
				Columns: []*schema.Column{AdminUsersColumns[1]},
			},
		},
	}
	// BuildVersionsColumns holds the columns for the "build_versions" table.
	BuildVersionsColumns = []*schema.Column{
		{Name: "build_version_id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"building", "ready", "active", "archived"}, Default: "building"},
		{Name: "activated_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "chatbot_id", Type: field.TypeString},
	}
	// BuildVersionsTable holds the schema information for the "build_versions" table.
	BuildVersionsTable = &schema.Table{
		Name:       "build_versions",
		Columns:    BuildVersionsColumns,
		PrimaryKey: []*schema.Column{BuildVersionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "build_versions_chatbots_versions",
				Columns:    []*schema.Column{BuildVersionsColumns[6]},
				RefColumns: []*schema.Column{ChatbotsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "buildversion_chatbot_id_version",
				Unique:  true,
				Columns: []*schema.Column{BuildVersionsColumns[6], BuildVersionsColumns[1]},
			},
			{
				Name:    "buildversion_chatbot_id_status",
				Unique:  false,
				Columns: []*schema.Column{BuildVersionsColumns[6], BuildVersionsColumns[2]},
			},
		},
	}
	// ChatSessionsColumns holds the columns for the "chat_sessions" table.
	ChatSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "message_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "chatbot_id", Type: field.TypeString},
	}
	// ChatSessionsTable holds the schema information for the "chat_sessions" table.
	ChatSessionsTable = &schema.Table{
		Name:       "chat_sessions",
		Columns:    ChatSessionsColumns,
		PrimaryKey: []*schema.Column{ChatSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_sessions_chatbots_sessions",
				Columns:    []*schema.Column{ChatSessionsColumns[4]},
				RefColumns: []*schema.Column{ChatbotsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatsession_chatbot_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[4], ChatSessionsColumns[2]},
			},
			{
				Name:    "chatsession_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[3]},
			},
		},
	}
	// ChatbotsColumns holds the columns for the "chatbots" table.
	ChatbotsColumns = []*schema.Column{
		{Name: "chatbot_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "persona", Type: field.TypeJSON, Nullable: true},
		{Name: "access_url", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"processing", "active", "inactive", "cleanup_pending"}, Default: "processing"},
		{Name: "active_version", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ChatbotsTable holds the schema information for the "chatbots" table.
	ChatbotsTable = &schema.Table{
		Name:       "chatbots",
		Columns:    ChatbotsColumns,
		PrimaryKey: []*schema.Column{ChatbotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatbot_access_url",
				Unique:  true,
				Columns: []*schema.Column{ChatbotsColumns[4]},
			},
			{
				Name:    "chatbot_status",
				Unique:  false,
				Columns: []*schema.Column{ChatbotsColumns[5]},
			},
			{
				Name:    "chatbot_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatbotsColumns[7]},
			},
		},
	}
	// DailyStatsColumns holds the columns for the "daily_stats" table.
	DailyStatsColumns = []*schema.Column{
		{Name: "daily_stat_id", Type: field.TypeString, Unique: true},
		{Name: "date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "session_count", Type: field.TypeInt, Default: 0},
		{Name: "message_count", Type: field.TypeInt, Default: 0},
		{Name: "total_response_time_ms", Type: field.TypeInt64, Default: 0},
		{Name: "input_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "retrieval_count", Type: field.TypeInt64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "chatbot_id", Type: field.TypeString},
	}
	// DailyStatsTable holds the schema information for the "daily_stats" table.
	DailyStatsTable = &schema.Table{
		Name:       "daily_stats",
		Columns:    DailyStatsColumns,
		PrimaryKey: []*schema.Column{DailyStatsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "daily_stats_chatbots_daily_stats",
				Columns:    []*schema.Column{DailyStatsColumns[9]},
				RefColumns: []*schema.Column{ChatbotsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "dailystat_chatbot_id_date",
				Unique:  true,
				Columns: []*schema.Column{DailyStatsColumns[9], DailyStatsColumns[1]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "document_id", Type: field.TypeString, Unique: true},
		{Name: "filename", Type: field.TypeString, Size: 512},
		{Name: "stored_path", Type: field.TypeString},
		{Name: "size_bytes", Type: field.TypeInt64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "parsing", "chunking", "embedding", "extracting", "graphing", "completed", "failed"}, Default: "pending"},
		{Name: "version", Type: field.TypeInt},
		{Name: "page_count", Type: field.TypeInt, Default: 0},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "chunk_count", Type: field.TypeInt, Default: 0},
		{Name: "entity_count", Type: field.TypeInt, Default: 0},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "chatbot_id", Type: field.TypeString},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_chatbots_documents",
				Columns:    []*schema.Column{DocumentsColumns[17]},
				RefColumns: []*schema.Column{ChatbotsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[4], DocumentsColumns[15]},
			},
			{
				Name:    "document_chatbot_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[17], DocumentsColumns[15]},
			},
			{
				Name:    "document_chatbot_id_version_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[17], DocumentsColumns[5], DocumentsColumns[4]},
			},
			{
				Name:    "document_pod_id_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[13], DocumentsColumns[14]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 10000},
		{Name: "sources", Type: field.TypeJSON, Nullable: true},
		{Name: "cancelled", Type: field.TypeBool, Default: false},
		{Name: "failed", Type: field.TypeBool, Default: false},
		{Name: "response_time_ms", Type: field.TypeInt, Default: 0},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "retrieval_count", Type: field.TypeInt, Default: 0},
		{Name: "retrieval_time_ms", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_chat_sessions_messages",
				Columns:    []*schema.Column{MessagesColumns[12]},
				RefColumns: []*schema.Column{ChatSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[12], MessagesColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdminUsersTable,
		BuildVersionsTable,
		ChatSessionsTable,
		ChatbotsTable,
		DailyStatsTable,
		DocumentsTable,
		MessagesTable,
	}
)

func init() {
	BuildVersionsTable.ForeignKeys[0].RefTable = ChatbotsTable
	ChatSessionsTable.ForeignKeys[0].RefTable = ChatbotsTable
	DailyStatsTable.ForeignKeys[0].RefTable = ChatbotsTable
	DocumentsTable.ForeignKeys[0].RefTable = ChatbotsTable
	MessagesTable.ForeignKeys[0].RefTable = ChatSessionsTable
}
