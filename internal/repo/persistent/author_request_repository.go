package persistent

import (
	"errors"
	"fmt"
	"time"

	"inkwell/internal/entity"
	"inkwell/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AuthorRequestRepository interface {
	Create(request *entity.AuthorRequest) error
	GetByID(id string) (*entity.AuthorRequest, error)
	HasActive(userID string) (bool, error)
	ListByStatus(status entity.RequestStatus) ([]*entity.AuthorRequest, error)
	Approve(id, reviewerID string) error
}

type authorRequestRepository struct {
	db *gorm.DB
}

func NewAuthorRequestRepository(db *gorm.DB) AuthorRequestRepository {
	return &authorRequestRepository{db: db}
}

func (r *authorRequestRepository) Create(request *entity.AuthorRequest) error {
	requestModel := ToAuthorRequestModel(request)
	if requestModel.ID == "" {
		requestModel.ID = uuid.New().String()
	}
	if requestModel.Status == "" {
		requestModel.Status = string(entity.RequestPending)
	}
	if err := r.db.Create(requestModel).Error; err != nil {
		return err
	}
	*request = *ToAuthorRequestEntity(requestModel)
	return nil
}

func (r *authorRequestRepository) GetByID(id string) (*entity.AuthorRequest, error) {
	var requestModel model.AuthorRequestModel
	if err := r.db.Preload("User").Where("id = ?", id).First(&requestModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: author request %s", entity.ErrNotFound, id)
		}
		return nil, err
	}
	return ToAuthorRequestEntity(&requestModel), nil
}

// HasActive reports whether the user already has a pending or approved
// request. Rejected requests do not block a new submission.
func (r *authorRequestRepository) HasActive(userID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.AuthorRequestModel{}).
		Where("user_id = ? AND status IN ?", userID, []string{
			string(entity.RequestPending),
			string(entity.RequestApproved),
		}).
		Count(&count).Error
	return count > 0, err
}

func (r *authorRequestRepository) ListByStatus(status entity.RequestStatus) ([]*entity.AuthorRequest, error) {
	var requestModels []model.AuthorRequestModel
	err := r.db.Preload("User").
		Where("status = ?", string(status)).
		Order("submitted_at ASC").
		Find(&requestModels).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*entity.AuthorRequest, len(requestModels))
	for i := range requestModels {
		requests[i] = ToAuthorRequestEntity(&requestModels[i])
	}
	return requests, nil
}

// Approve promotes the applicant and marks the request approved in one
// transaction: both effects commit together or not at all. The row lock keeps
// two concurrent approvals from both passing the pending check.
func (r *authorRequestRepository) Approve(id, reviewerID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var requestModel model.AuthorRequestModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&requestModel).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: author request %s", entity.ErrNotFound, id)
			}
			return err
		}

		if requestModel.Status != string(entity.RequestPending) {
			return fmt.Errorf("%w: request is not pending", entity.ErrConflict)
		}

		err = tx.Model(&model.UserModel{}).
			Where("id = ?", requestModel.UserID).
			Update("role", string(entity.RoleAuthor)).Error
		if err != nil {
			return err
		}

		now := time.Now()
		return tx.Model(&requestModel).Updates(map[string]interface{}{
			"status":      string(entity.RequestApproved),
			"reviewed_at": now,
			"reviewed_by": reviewerID,
		}).Error
	})
}
