package repository

import (
	"context"

	"clicknova_admin/internal/adapter/persistence/docstore"
	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const usersCollection = "users"

type userItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Email        string `dynamodbav:"email"`
	PasswordHash string `dynamodbav:"passwordHash"`
	Role         string `dynamodbav:"role"`
	CreatedAt    string `dynamodbav:"createdAt"`
	UpdatedAt    string `dynamodbav:"updatedAt"`
}

type UserDynamoRepository struct {
	store *docstore.Store
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(store *docstore.Store) *UserDynamoRepository {
	return &UserDynamoRepository{store: store}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	fields, err := marshalFields(toUserItem(u))
	if err != nil {
		return entities.User{}, err
	}
	if err := r.store.Create(ctx, usersCollection, u.ID, fields); err != nil {
		return entities.User{}, err
	}
	return r.GetByID(ctx, u.ID)
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	av, err := r.store.GetOne(ctx, usersCollection, id)
	if err != nil || av == nil {
		return entities.User{}, err
	}
	var it userItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	avs, err := r.store.QueryEq(ctx, usersCollection, "email", email)
	if err != nil {
		return entities.User{}, err
	}
	if len(avs) == 0 {
		return entities.User{}, nil
	}
	var it userItem
	if err := attributevalue.UnmarshalMap(avs[0], &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
	}
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:           it.ID,
		Name:         it.Name,
		Email:        it.Email,
		PasswordHash: it.PasswordHash,
		Role:         it.Role,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
