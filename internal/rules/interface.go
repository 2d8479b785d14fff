package rules

import (
	"context"

	"github.com/mattjoyce/groundskeeper/internal/notion"
)

//go:generate mockgen -destination=mocks/mock_api.go -package=mocks github.com/mattjoyce/groundskeeper/internal/rules DocumentAPI

// DocumentAPI is the document service surface the workflow rules need.
// One implementation exists per workspace credential.
type DocumentAPI interface {
	QueryDatabase(ctx context.Context, databaseID string) ([]notion.Page, error)
	GetPage(ctx context.Context, pageID string) (*notion.Page, error)
	UpdatePage(ctx context.Context, pageID string, properties map[string]notion.Property) error
	CreateComment(ctx context.Context, pageID string, richText []notion.RichText) error
	ListBlockChildren(ctx context.Context, blockID string) ([]notion.Block, error)
	UpdateBlock(ctx context.Context, blockID, blockType string, richText []notion.RichText) error
	AppendBlockChildren(ctx context.Context, pageID string, blocks []notion.Block) error
	UpdateDatabaseSchema(ctx context.Context, databaseID string, properties map[string]notion.SchemaProperty) error
}
