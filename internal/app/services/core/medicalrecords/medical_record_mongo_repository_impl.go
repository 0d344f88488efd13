package medicalrecords

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"healthrecords-service/internal/app/contracts"
	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/pkg/constvars"
	"healthrecords-service/internal/pkg/exceptions"
)

type MedicalRecordMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicalRecordMongoRepository(db *mongo.Client, dbName string) contracts.MedicalRecordRepository {
	return &MedicalRecordMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedicalRecords),
	}
}

func (repo *MedicalRecordMongoRepository) CreateMedicalRecord(ctx context.Context, record *models.MedicalRecord) (string, error) {
	_, err := repo.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return record.ID, nil
}

func (repo *MedicalRecordMongoRepository) FindAll(ctx context.Context) ([]models.MedicalRecord, error) {
	return repo.findByFilter(ctx, bson.M{})
}

func (repo *MedicalRecordMongoRepository) FindByID(ctx context.Context, recordID string) (*models.MedicalRecord, error) {
	record := new(models.MedicalRecord)
	err := repo.Collection.FindOne(ctx, bson.M{"_id": recordID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return record, nil
}

func (repo *MedicalRecordMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.MedicalRecord, error) {
	return repo.findByFilter(ctx, bson.M{"patientId": patientID})
}

func (repo *MedicalRecordMongoRepository) UpdateMedicalRecord(ctx context.Context, record *models.MedicalRecord) error {
	_, err := repo.Collection.ReplaceOne(ctx, bson.M{"_id": record.ID}, record)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *MedicalRecordMongoRepository) findByFilter(ctx context.Context, filter bson.M) ([]models.MedicalRecord, error) {
	var records []models.MedicalRecord
	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &records)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, nil
}
