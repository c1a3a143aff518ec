package implementation

import (
	"context"
	"errors"

	"teamspace-be/internal/entity"
	"teamspace-be/internal/mapper"
	"teamspace-be/internal/model"
	"teamspace-be/internal/repository/contract"
	"teamspace-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MembershipMapper
}

func NewMembershipRepository(db *gorm.DB) contract.MembershipRepository {
	return &MembershipRepositoryImpl{
		db:     db,
		mapper: mapper.NewMembershipMapper(),
	}
}

func (r *MembershipRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MembershipRepositoryImpl) Create(ctx context.Context, membership *entity.Membership) error {
	m := r.mapper.ToModel(membership)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*membership = *r.mapper.ToEntity(m)
	return nil
}

func (r *MembershipRepositoryImpl) Update(ctx context.Context, membership *entity.Membership) error {
	m := r.mapper.ToModel(membership)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*membership = *r.mapper.ToEntity(m)
	return nil
}

func (r *MembershipRepositoryImpl) FindByPair(ctx context.Context, workspaceId, userId uuid.UUID) (*entity.Membership, error) {
	var m model.WorkspaceMember
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.MemberPair{WorkspaceID: workspaceId, UserID: userId},
	)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MembershipRepositoryImpl) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Membership, error) {
	var models []*model.WorkspaceMember
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MembershipRepositoryImpl) FindAllByWorkspace(ctx context.Context, workspaceId uuid.UUID) ([]*entity.Membership, error) {
	var models []*model.WorkspaceMember
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.ByWorkspaceID{WorkspaceID: workspaceId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MembershipRepositoryImpl) DeleteByPair(ctx context.Context, workspaceId, userId uuid.UUID) (int64, error) {
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.MemberPair{WorkspaceID: workspaceId, UserID: userId},
	)
	result := query.Delete(&model.WorkspaceMember{})
	return result.RowsAffected, result.Error
}

func (r *MembershipRepositoryImpl) DeleteAllByWorkspace(ctx context.Context, workspaceId uuid.UUID) error {
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.ByWorkspaceID{WorkspaceID: workspaceId},
	)
	return query.Delete(&model.WorkspaceMember{}).Error
}
