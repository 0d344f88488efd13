package roles

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"healthrecords-service/internal/app/contracts"
	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/pkg/constvars"
	"healthrecords-service/internal/pkg/exceptions"
	"healthrecords-service/internal/pkg/queries"
)

type rolePostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewRolePostgresRepository(db *sql.DB, logger *zap.Logger) contracts.RoleRepository {
	return &rolePostgresRepository{DB: db, Log: logger}
}

func (r *rolePostgresRepository) FindAll(ctx context.Context) ([]models.Role, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("rolePostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rows, err := r.DB.QueryContext(ctx, queries.GetAllRolesQuery)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var roleEntities []models.Role
	for rows.Next() {
		var roleEntity models.Role
		err = rows.Scan(&roleEntity.ID, &roleEntity.Name, pq.Array(&roleEntity.Permissions),
			&roleEntity.CreatedAt, &roleEntity.UpdatedAt)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		roleEntities = append(roleEntities, roleEntity)
	}
	if err = rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return roleEntities, nil
}

func (r *rolePostgresRepository) FindByName(ctx context.Context, roleName string) (*models.Role, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("rolePostgresRepository.FindByName called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	roleEntity := new(models.Role)
	err := r.DB.QueryRowContext(ctx, queries.GetRoleByNameQuery, roleName).
		Scan(&roleEntity.ID, &roleEntity.Name, pq.Array(&roleEntity.Permissions),
			&roleEntity.CreatedAt, &roleEntity.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return roleEntity, nil
}

func (r *rolePostgresRepository) CreateRole(ctx context.Context, roleEntity *models.Role) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("rolePostgresRepository.CreateRole called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var id string
	err := r.DB.QueryRowContext(ctx, queries.InsertRoleQuery,
		roleEntity.ID, roleEntity.Name, pq.Array(roleEntity.Permissions),
	).Scan(&id)
	if err != nil {
		return "", exceptions.ErrPostgresDBInsertData(err)
	}
	return id, nil
}

func (r *rolePostgresRepository) UpdateRole(ctx context.Context, roleName string, permissions []string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("rolePostgresRepository.UpdateRole called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	_, err := r.DB.ExecContext(ctx, queries.UpdateRoleQuery, pq.Array(permissions), roleName)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}
