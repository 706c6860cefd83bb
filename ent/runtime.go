// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/lorekeep/lorekeep/ent/adminuser"
	"github.com/lorekeep/lorekeep/ent/buildversion"
	"github.com/lorekeep/lorekeep/ent/chatbot"
	"github.com/lorekeep/lorekeep/ent/chatsession"
	"github.com/lorekeep/lorekeep/ent/dailystat"
	"github.com/lorekeep/lorekeep/ent/document"
	"github.com/lorekeep/lorekeep/ent/message"
	"github.com/lorekeep/lorekeep/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adminuserFields := schema.AdminUser{}.Fields()
	_ = adminuserFields
	// adminuserDescEmail is the schema descriptor for email field.
	adminuserDescEmail := adminuserFields[1].Descriptor()
	// adminuser.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	adminuser.EmailValidator = adminuserDescEmail.Validators[0].(func(string) error)
	// adminuserDescPasswordHash is the schema descriptor for password_hash field.
	adminuserDescPasswordHash := adminuserFields[2].Descriptor()
	// adminuser.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	adminuser.PasswordHashValidator = adminuserDescPasswordHash.Validators[0].(func(string) error)
	// adminuserDescCreatedAt is the schema descriptor for created_at field.
	adminuserDescCreatedAt := adminuserFields[3].Descriptor()
	// adminuser.DefaultCreatedAt holds the default value on creation for the created_at field.
	adminuser.DefaultCreatedAt = adminuserDescCreatedAt.Default.(func() time.Time)
	buildversionFields := schema.BuildVersion{}.Fields()
	_ = buildversionFields
	// buildversionDescVersion is the schema descriptor for version field.
	buildversionDescVersion := buildversionFields[2].Descriptor()
	// buildversion.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	buildversion.VersionValidator = buildversionDescVersion.Validators[0].(func(int) error)
	// buildversionDescCreatedAt is the schema descriptor for created_at field.
	buildversionDescCreatedAt := buildversionFields[5].Descriptor()
	// buildversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	buildversion.DefaultCreatedAt = buildversionDescCreatedAt.Default.(func() time.Time)
	// buildversionDescUpdatedAt is the schema descriptor for updated_at field.
	buildversionDescUpdatedAt := buildversionFields[6].Descriptor()
	// buildversion.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	buildversion.DefaultUpdatedAt = buildversionDescUpdatedAt.Default.(func() time.Time)
	// buildversion.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	buildversion.UpdateDefaultUpdatedAt = buildversionDescUpdatedAt.UpdateDefault.(func() time.Time)
	chatsessionFields := schema.ChatSession{}.Fields()
	_ = chatsessionFields
	// chatsessionDescMessageCount is the schema descriptor for message_count field.
	chatsessionDescMessageCount := chatsessionFields[2].Descriptor()
	// chatsession.DefaultMessageCount holds the default value on creation for the message_count field.
	chatsession.DefaultMessageCount = chatsessionDescMessageCount.Default.(int)
	// chatsessionDescCreatedAt is the schema descriptor for created_at field.
	chatsessionDescCreatedAt := chatsessionFields[3].Descriptor()
	// chatsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatsession.DefaultCreatedAt = chatsessionDescCreatedAt.Default.(func() time.Time)
	chatbotFields := schema.Chatbot{}.Fields()
	_ = chatbotFields
	// chatbotDescName is the schema descriptor for name field.
	chatbotDescName := chatbotFields[1].Descriptor()
	// chatbot.NameValidator is a validator for the "name" field. It is called by the builders before save.
	chatbot.NameValidator = func() func(string) error {
		validators := chatbotDescName.Validators
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
	// chatbotDescAccessURL is the schema descriptor for access_url field.
	chatbotDescAccessURL := chatbotFields[4].Descriptor()
	// chatbot.AccessURLValidator is a validator for the "access_url" field. It is called by the builders before save.
	chatbot.AccessURLValidator = func() func(string) error {
		validators := chatbotDescAccessURL.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(access_url string) error {
			for _, fn := range fns {
				if err := fn(access_url); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// chatbotDescActiveVersion is the schema descriptor for active_version field.
	chatbotDescActiveVersion := chatbotFields[6].Descriptor()
	// chatbot.DefaultActiveVersion holds the default value on creation for the active_version field.
	chatbot.DefaultActiveVersion = chatbotDescActiveVersion.Default.(int)
	// chatbotDescCreatedAt is the schema descriptor for created_at field.
	chatbotDescCreatedAt := chatbotFields[7].Descriptor()
	// chatbot.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatbot.DefaultCreatedAt = chatbotDescCreatedAt.Default.(func() time.Time)
	// chatbotDescUpdatedAt is the schema descriptor for updated_at field.
	chatbotDescUpdatedAt := chatbotFields[8].Descriptor()
	// chatbot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chatbot.DefaultUpdatedAt = chatbotDescUpdatedAt.Default.(func() time.Time)
	// chatbot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chatbot.UpdateDefaultUpdatedAt = chatbotDescUpdatedAt.UpdateDefault.(func() time.Time)
	dailystatFields := schema.DailyStat{}.Fields()
	_ = dailystatFields
	// dailystatDescSessionCount is the schema descriptor for session_count field.
	dailystatDescSessionCount := dailystatFields[3].Descriptor()
	// dailystat.DefaultSessionCount holds the default value on creation for the session_count field.
	dailystat.DefaultSessionCount = dailystatDescSessionCount.Default.(int)
	// dailystatDescMessageCount is the schema descriptor for message_count field.
	dailystatDescMessageCount := dailystatFields[4].Descriptor()
	// dailystat.DefaultMessageCount holds the default value on creation for the message_count field.
	dailystat.DefaultMessageCount = dailystatDescMessageCount.Default.(int)
	// dailystatDescTotalResponseTimeMs is the schema descriptor for total_response_time_ms field.
	dailystatDescTotalResponseTimeMs := dailystatFields[5].Descriptor()
	// dailystat.DefaultTotalResponseTimeMs holds the default value on creation for the total_response_time_ms field.
	dailystat.DefaultTotalResponseTimeMs = dailystatDescTotalResponseTimeMs.Default.(int64)
	// dailystatDescInputTokens is the schema descriptor for input_tokens field.
	dailystatDescInputTokens := dailystatFields[6].Descriptor()
	// dailystat.DefaultInputTokens holds the default value on creation for the input_tokens field.
	dailystat.DefaultInputTokens = dailystatDescInputTokens.Default.(int64)
	// dailystatDescOutputTokens is the schema descriptor for output_tokens field.
	dailystatDescOutputTokens := dailystatFields[7].Descriptor()
	// dailystat.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	dailystat.DefaultOutputTokens = dailystatDescOutputTokens.Default.(int64)
	// dailystatDescRetrievalCount is the schema descriptor for retrieval_count field.
	dailystatDescRetrievalCount := dailystatFields[8].Descriptor()
	// dailystat.DefaultRetrievalCount holds the default value on creation for the retrieval_count field.
	dailystat.DefaultRetrievalCount = dailystatDescRetrievalCount.Default.(int64)
	// dailystatDescUpdatedAt is the schema descriptor for updated_at field.
	dailystatDescUpdatedAt := dailystatFields[9].Descriptor()
	// dailystat.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dailystat.DefaultUpdatedAt = dailystatDescUpdatedAt.Default.(func() time.Time)
	// dailystat.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dailystat.UpdateDefaultUpdatedAt = dailystatDescUpdatedAt.UpdateDefault.(func() time.Time)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[2].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = func() func(string) error {
		validators := documentDescFilename.Validators
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
	// documentDescStoredPath is the schema descriptor for stored_path field.
	documentDescStoredPath := documentFields[3].Descriptor()
	// document.StoredPathValidator is a validator for the "stored_path" field. It is called by the builders before save.
	document.StoredPathValidator = documentDescStoredPath.Validators[0].(func(string) error)
	// documentDescSizeBytes is the schema descriptor for size_bytes field.
	documentDescSizeBytes := documentFields[4].Descriptor()
	// document.SizeBytesValidator is a validator for the "size_bytes" field. It is called by the builders before save.
	document.SizeBytesValidator = documentDescSizeBytes.Validators[0].(func(int64) error)
	// documentDescPageCount is the schema descriptor for page_count field.
	documentDescPageCount := documentFields[7].Descriptor()
	// document.DefaultPageCount holds the default value on creation for the page_count field.
	document.DefaultPageCount = documentDescPageCount.Default.(int)
	// documentDescProgress is the schema descriptor for progress field.
	documentDescProgress := documentFields[8].Descriptor()
	// document.DefaultProgress holds the default value on creation for the progress field.
	document.DefaultProgress = documentDescProgress.Default.(int)
	// document.ProgressValidator is a validator for the "progress" field. It is called by the builders before save.
	document.ProgressValidator = documentDescProgress.Validators[0].(func(int) error)
	// documentDescChunkCount is the schema descriptor for chunk_count field.
	documentDescChunkCount := documentFields[10].Descriptor()
	// document.DefaultChunkCount holds the default value on creation for the chunk_count field.
	document.DefaultChunkCount = documentDescChunkCount.Default.(int)
	// documentDescEntityCount is the schema descriptor for entity_count field.
	documentDescEntityCount := documentFields[11].Descriptor()
	// document.DefaultEntityCount holds the default value on creation for the entity_count field.
	document.DefaultEntityCount = documentDescEntityCount.Default.(int)
	// documentDescAttempts is the schema descriptor for attempts field.
	documentDescAttempts := documentFields[12].Descriptor()
	// document.DefaultAttempts holds the default value on creation for the attempts field.
	document.DefaultAttempts = documentDescAttempts.Default.(int)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[16].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[17].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescContent is the schema descriptor for content field.
	messageDescContent := messageFields[3].Descriptor()
	// message.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	message.ContentValidator = messageDescContent.Validators[0].(func(string) error)
	// messageDescCancelled is the schema descriptor for cancelled field.
	messageDescCancelled := messageFields[5].Descriptor()
	// message.DefaultCancelled holds the default value on creation for the cancelled field.
	message.DefaultCancelled = messageDescCancelled.Default.(bool)
	// messageDescFailed is the schema descriptor for failed field.
	messageDescFailed := messageFields[6].Descriptor()
	// message.DefaultFailed holds the default value on creation for the failed field.
	message.DefaultFailed = messageDescFailed.Default.(bool)
	// messageDescResponseTimeMs is the schema descriptor for response_time_ms field.
	messageDescResponseTimeMs := messageFields[7].Descriptor()
	// message.DefaultResponseTimeMs holds the default value on creation for the response_time_ms field.
	message.DefaultResponseTimeMs = messageDescResponseTimeMs.Default.(int)
	// messageDescInputTokens is the schema descriptor for input_tokens field.
	messageDescInputTokens := messageFields[8].Descriptor()
	// message.DefaultInputTokens holds the default value on creation for the input_tokens field.
	message.DefaultInputTokens = messageDescInputTokens.Default.(int)
	// messageDescOutputTokens is the schema descriptor for output_tokens field.
	messageDescOutputTokens := messageFields[9].Descriptor()
	// message.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	message.DefaultOutputTokens = messageDescOutputTokens.Default.(int)
	// messageDescRetrievalCount is the schema descriptor for retrieval_count field.
	messageDescRetrievalCount := messageFields[10].Descriptor()
	// message.DefaultRetrievalCount holds the default value on creation for the retrieval_count field.
	message.DefaultRetrievalCount = messageDescRetrievalCount.Default.(int)
	// messageDescRetrievalTimeMs is the schema descriptor for retrieval_time_ms field.
	messageDescRetrievalTimeMs := messageFields[11].Descriptor()
	// message.DefaultRetrievalTimeMs holds the default value on creation for the retrieval_time_ms field.
	message.DefaultRetrievalTimeMs = messageDescRetrievalTimeMs.Default.(int)
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[12].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
}
