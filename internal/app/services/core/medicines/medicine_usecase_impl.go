package medicines

import (
	"context"
	"time"

	"go.uber.org/zap"

	"healthrecords-service/internal/app/contracts"
	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/app/services/core/authz"
	"healthrecords-service/internal/pkg/constvars"
	"healthrecords-service/internal/pkg/dto/requests"
	"healthrecords-service/internal/pkg/dto/responses"
	"healthrecords-service/internal/pkg/exceptions"
	"healthrecords-service/internal/pkg/utils"
)

type medicineUsecase struct {
	MedicineRepository contracts.MedicineRepository
	Engine             *authz.Engine
	Log                *zap.Logger
}

func NewMedicineUsecase(
	medicineRepository contracts.MedicineRepository,
	engine *authz.Engine,
	logger *zap.Logger,
) contracts.MedicineUsecase {
	return &medicineUsecase{
		MedicineRepository: medicineRepository,
		Engine:             engine,
		Log:                logger,
	}
}

func (uc *medicineUsecase) CreateMedicine(ctx context.Context, actor *authz.Actor, request *requests.CreateMedicine) (*responses.Medicine, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineUsecase.CreateMedicine called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionCreateMedicine, ""); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}

	existing, err := uc.MedicineRepository.FindByName(ctx, request.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrDataAlreadyExists(nil)
	}

	now := time.Now()
	medicine := &models.Medicine{
		ID:           utils.GenerateDocumentID(),
		Name:         request.Name,
		Description:  request.Description,
		Manufacturer: request.Manufacturer,
		Price:        request.Price,
		Stock:        request.Stock,
		ExpiryDate:   request.ExpiryDate,
		TimeModel:    models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	if _, err := uc.MedicineRepository.CreateMedicine(ctx, medicine); err != nil {
		return nil, err
	}
	return convertMedicineToResponse(medicine), nil
}

func (uc *medicineUsecase) GetMedicines(ctx context.Context, actor *authz.Actor) ([]responses.Medicine, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineUsecase.GetMedicines called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionViewMedicines, ""); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}

	medicines, err := uc.MedicineRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	medicineResponses := make([]responses.Medicine, 0, len(medicines))
	for i := range medicines {
		medicineResponses = append(medicineResponses, *convertMedicineToResponse(&medicines[i]))
	}
	return medicineResponses, nil
}

func (uc *medicineUsecase) GetMedicineByID(ctx context.Context, actor *authz.Actor, medicineID string) (*responses.Medicine, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineUsecase.GetMedicineByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionViewMedicines, ""); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}

	medicine, err := uc.MedicineRepository.FindByID(ctx, medicineID)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, exceptions.ErrDataNotFound(nil)
	}
	return convertMedicineToResponse(medicine), nil
}

func (uc *medicineUsecase) UpdateMedicine(ctx context.Context, actor *authz.Actor, medicineID string, request *requests.UpdateMedicine) (*responses.Medicine, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineUsecase.UpdateMedicine called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionEditMedicine, ""); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}

	medicine, err := uc.MedicineRepository.FindByID(ctx, medicineID)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, exceptions.ErrDataNotFound(nil)
	}

	if request.Description != "" {
		medicine.Description = request.Description
	}
	if request.Manufacturer != "" {
		medicine.Manufacturer = request.Manufacturer
	}
	if request.Price > 0 {
		medicine.Price = request.Price
	}
	if request.Stock > 0 {
		medicine.Stock = request.Stock
	}
	if request.ExpiryDate != "" {
		medicine.ExpiryDate = request.ExpiryDate
	}
	medicine.UpdatedAt = time.Now()

	if err := uc.MedicineRepository.UpdateMedicine(ctx, medicine); err != nil {
		return nil, err
	}
	return convertMedicineToResponse(medicine), nil
}

func (uc *medicineUsecase) DeleteMedicine(ctx context.Context, actor *authz.Actor, medicineID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineUsecase.DeleteMedicine called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionDeleteMedicine, ""); !decision.Allowed {
		return exceptions.ErrInsufficientPermission(decision.Reason)
	}

	medicine, err := uc.MedicineRepository.FindByID(ctx, medicineID)
	if err != nil {
		return err
	}
	if medicine == nil {
		return exceptions.ErrDataNotFound(nil)
	}

	return uc.MedicineRepository.DeleteByID(ctx, medicineID)
}

func convertMedicineToResponse(medicine *models.Medicine) *responses.Medicine {
	return &responses.Medicine{
		ID:           medicine.ID,
		Name:         medicine.Name,
		Description:  medicine.Description,
		Manufacturer: medicine.Manufacturer,
		Price:        medicine.Price,
		Stock:        medicine.Stock,
		ExpiryDate:   medicine.ExpiryDate,
	}
}
