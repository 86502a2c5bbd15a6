package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-notes-nosql/internal/domain"
)

// API is the subset of *dynamodb.Client used by NoteRepo.
type API interface {
	dynamodb.QueryAPIClient
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// noteItem is the stored shape of a note. created_at is kept as Unix
// nanoseconds so the GSI range key sorts numerically.
type noteItem struct {
	NoteID     string `dynamodbav:"note_id"`
	Collection string `dynamodbav:"collection"`
	Title      string `dynamodbav:"title"`
	Content    string `dynamodbav:"content"`
	CreatedAt  int64  `dynamodbav:"created_at"`
}

func toItem(n *domain.Note) noteItem {
	return noteItem{
		NoteID:     n.NoteID,
		Collection: notesCollection,
		Title:      n.Title,
		Content:    n.Content,
		CreatedAt:  n.CreatedAt.UnixNano(),
	}
}

func (it noteItem) toNote() domain.Note {
	return domain.Note{
		NoteID:    it.NoteID,
		Title:     it.Title,
		Content:   it.Content,
		CreatedAt: time.Unix(0, it.CreatedAt).UTC(),
	}
}

// NoteRepo provides typed DynamoDB operations for the notes table.
type NoteRepo struct {
	client    API
	tableName string
}

func NewNoteRepo(client API, tableName string) *NoteRepo {
	return &NoteRepo{client: client, tableName: tableName}
}

// Put inserts a new note. The condition guards against overwriting an
// existing item should an id ever collide.
func (r *NoteRepo) Put(ctx context.Context, n *domain.Note) error {
	item, err := attributevalue.MarshalMap(toItem(n))
	if err != nil {
		return fmt.Errorf("marshal note: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": fieldNoteID,
		},
	})
	return err
}

func (r *NoteRepo) Get(ctx context.Context, noteID string) (*domain.Note, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey(fieldNoteID, noteID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("note not found: %w", domain.ErrNotFound)
	}
	var it noteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	n := it.toNote()
	return &n, nil
}

// List queries the collection-created_at GSI newest first and follows
// LastEvaluatedKey until the whole collection has been read.
func (r *NoteRepo) List(ctx context.Context) ([]domain.Note, error) {
	p := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(indexCollectionCreatedAt),
		KeyConditionExpression: aws.String("#c = :c"),
		ExpressionAttributeNames: map[string]string{
			"#c": fieldCollection,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":c": &types.AttributeValueMemberS{Value: notesCollection},
		},
		ScanIndexForward: aws.Bool(false),
	})

	notes := []domain.Note{}
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []noteItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			notes = append(notes, it.toNote())
		}
	}
	return notes, nil
}

// Delete permanently removes a note item (no soft delete for notes).
func (r *NoteRepo) Delete(ctx context.Context, noteID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey(fieldNoteID, noteID),
	})
	return err
}
