package medicines

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"healthrecords-service/internal/app/contracts"
	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/pkg/constvars"
	"healthrecords-service/internal/pkg/exceptions"
)

type MedicineMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicineMongoRepository(db *mongo.Client, dbName string) contracts.MedicineRepository {
	return &MedicineMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedicines),
	}
}

func (repo *MedicineMongoRepository) CreateMedicine(ctx context.Context, medicine *models.Medicine) (string, error) {
	_, err := repo.Collection.InsertOne(ctx, medicine)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return medicine.ID, nil
}

func (repo *MedicineMongoRepository) FindAll(ctx context.Context) ([]models.Medicine, error) {
	var medicines []models.Medicine
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &medicines)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return medicines, nil
}

func (repo *MedicineMongoRepository) FindByID(ctx context.Context, medicineID string) (*models.Medicine, error) {
	medicine := new(models.Medicine)
	err := repo.Collection.FindOne(ctx, bson.M{"_id": medicineID}).Decode(&medicine)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return medicine, nil
}

func (repo *MedicineMongoRepository) FindByName(ctx context.Context, name string) (*models.Medicine, error) {
	medicine := new(models.Medicine)
	err := repo.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&medicine)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return medicine, nil
}

func (repo *MedicineMongoRepository) UpdateMedicine(ctx context.Context, medicine *models.Medicine) error {
	_, err := repo.Collection.ReplaceOne(ctx, bson.M{"_id": medicine.ID}, medicine)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *MedicineMongoRepository) DeleteByID(ctx context.Context, medicineID string) error {
	_, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": medicineID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
