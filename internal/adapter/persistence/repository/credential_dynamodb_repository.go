package repository

import (
	"context"
	"time"

	"checkout_pro/internal/domain/entities"
	"checkout_pro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCredentialsTableName = "credentials"

type credentialItem struct {
	Name        string `dynamodbav:"name"`
	AccessToken string `dynamodbav:"access_token"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// CredentialDynamoRepository persists the gateway credential in DynamoDB.
//
// Table requirements:
//   - PK: name (string)
//
// Only one item is ever written (entities.CredentialName); Put overwrites it
// unconditionally because replacing the credential is the whole point.

type CredentialDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICredentialRepository = (*CredentialDynamoRepository)(nil)

func NewCredentialDynamoRepository(ddb *dynamodb.Client) *CredentialDynamoRepository {
	return &CredentialDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CREDENTIALS_TABLE", defaultCredentialsTableName),
	}
}

func (r *CredentialDynamoRepository) Get(ctx context.Context, name string) (entities.Credential, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Credential{}, err
	}
	if len(out.Item) == 0 {
		return entities.Credential{}, nil
	}

	var it credentialItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Credential{}, err
	}
	return fromCredentialItem(it), nil
}

func (r *CredentialDynamoRepository) Put(ctx context.Context, cred entities.Credential) error {
	av, err := attributevalue.MarshalMap(toCredentialItem(cred))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *CredentialDynamoRepository) Delete(ctx context.Context, name string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
	})
	return err
}

func toCredentialItem(c entities.Credential) credentialItem {
	return credentialItem{
		Name:        c.Name,
		AccessToken: c.AccessToken,
		UpdatedAt:   c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCredentialItem(it credentialItem) entities.Credential {
	dt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Credential{
		Name:        it.Name,
		AccessToken: it.AccessToken,
		UpdatedAt:   dt,
	}
}
