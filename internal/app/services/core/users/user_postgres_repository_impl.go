package users

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"healthrecords-service/internal/app/contracts"
	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/pkg/constvars"
	"healthrecords-service/internal/pkg/exceptions"
	"healthrecords-service/internal/pkg/queries"
)

type userPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewUserPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.UserRepository {
	return &userPostgresRepository{DB: db, Log: logger}
}

func (r *userPostgresRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("userPostgresRepository.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var id string
	err := r.DB.QueryRowContext(ctx, queries.CreateUserQuery,
		userModel.ID, userModel.Email, userModel.Password, userModel.RoleName,
		userModel.Active, userModel.PatientID, userModel.DoctorID,
	).Scan(&id)
	if err != nil {
		r.Log.Error("userPostgresRepository.CreateUser error inserting user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrPostgresDBInsertData(err)
	}
	return id, nil
}

func (r *userPostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("userPostgresRepository.FindByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return r.scanUser(r.DB.QueryRowContext(ctx, queries.FindUserByEmailQuery, email))
}

func (r *userPostgresRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("userPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return r.scanUser(r.DB.QueryRowContext(ctx, queries.FindUserByIDQuery, userID))
}

func (r *userPostgresRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("userPostgresRepository.UpdateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	_, err := r.DB.ExecContext(ctx, queries.UpdateUserQuery,
		userModel.Email, userModel.Password, userModel.RoleName, userModel.Active,
		userModel.PatientID, userModel.DoctorID, userModel.ID,
	)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *userPostgresRepository) scanUser(row *sql.Row) (*models.User, error) {
	userModel := new(models.User)
	var patientID, doctorID sql.NullString
	err := row.Scan(
		&userModel.ID, &userModel.Email, &userModel.Password, &userModel.RoleName,
		&userModel.Active, &patientID, &doctorID,
		&userModel.CreatedAt, &userModel.UpdatedAt, &userModel.DeletedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	userModel.PatientID = patientID.String
	userModel.DoctorID = doctorID.String
	return userModel, nil
}
