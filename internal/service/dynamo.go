package service

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamotypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/autochef/recipe-gateway/internal/models"
)

// DynamoRecipeStore persists recipe artifacts in a DynamoDB table keyed by
// the generated recipe id.
type DynamoRecipeStore struct {
	client *dynamodb.Client
	table  string
}

// NewDynamoRecipeStore creates a new DynamoRecipeStore using the default AWS
// credential chain.
func NewDynamoRecipeStore(ctx context.Context, table, region string) (*DynamoRecipeStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &DynamoRecipeStore{
		client: dynamodb.NewFromConfig(cfg),
		table:  table,
	}, nil
}

// Save writes a new artifact record.
func (s *DynamoRecipeStore) Save(ctx context.Context, record *models.PersistedRecipe) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("failed to marshal recipe record: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to save recipe to DynamoDB: %w", err)
	}

	return nil
}

// GetByID retrieves a single artifact record.
func (s *DynamoRecipeStore) GetByID(ctx context.Context, id string) (*models.PersistedRecipe, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]dynamotypes.AttributeValue{
			"id": &dynamotypes.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe from DynamoDB: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, ErrRecipeNotFound
	}

	var record models.PersistedRecipe
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recipe record: %w", err)
	}

	return &record, nil
}

// ListAll returns every archived recipe.
func (s *DynamoRecipeStore) ListAll(ctx context.Context) ([]models.PersistedRecipe, error) {
	var records []models.PersistedRecipe

	paginator := dynamodb.NewScanPaginator(s.client, &dynamodb.ScanInput{
		TableName: aws.String(s.table),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipes from DynamoDB: %w", err)
		}

		var pageRecords []models.PersistedRecipe
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageRecords); err != nil {
			return nil, fmt.Errorf("failed to unmarshal recipe records: %w", err)
		}
		records = append(records, pageRecords...)
	}

	return records, nil
}
