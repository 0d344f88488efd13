package roles

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"healthrecords-service/internal/app/contracts"
	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/pkg/constvars"
	"healthrecords-service/internal/pkg/exceptions"
)

type RoleMongoRepository struct {
	Collection *mongo.Collection
}

func NewRoleMongoRepository(db *mongo.Client, dbName string) contracts.RoleRepository {
	return &RoleMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionRoles),
	}
}

func (repo *RoleMongoRepository) FindAll(ctx context.Context) ([]models.Role, error) {
	var roleEntities []models.Role
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &roleEntities)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return roleEntities, nil
}

func (repo *RoleMongoRepository) FindByName(ctx context.Context, roleName string) (*models.Role, error) {
	roleEntity := new(models.Role)
	err := repo.Collection.FindOne(ctx, bson.M{"name": roleName}).Decode(&roleEntity)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return roleEntity, nil
}

func (repo *RoleMongoRepository) CreateRole(ctx context.Context, roleEntity *models.Role) (string, error) {
	_, err := repo.Collection.InsertOne(ctx, roleEntity)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return roleEntity.ID, nil
}

func (repo *RoleMongoRepository) UpdateRole(ctx context.Context, roleName string, permissions []string) error {
	_, err := repo.Collection.UpdateOne(ctx,
		bson.M{"name": roleName},
		bson.M{"$set": bson.M{"permissions": permissions, "updatedAt": time.Now()}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
