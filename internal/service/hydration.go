package service

import (
	"context"

	"teamspace-be/internal/dto"
	"teamspace-be/internal/entity"
	"teamspace-be/internal/repository/contract"

	"github.com/google/uuid"
)

// userResolver joins user references from workspace partitions against
// the shared database. One batched lookup per result set, never one
// per record; credential and reset-token material never leaves here.
type userResolver struct {
	users contract.UserRepository
}

func newUserResolver(users contract.UserRepository) *userResolver {
	return &userResolver{users: users}
}

func summarize(u *entity.User) *dto.UserSummary {
	if u == nil {
		return nil
	}
	return &dto.UserSummary{
		Id:     u.Id,
		Email:  u.Email,
		Status: string(u.ResolveStatus()),
	}
}

// BatchResolve fetches summaries for the given ids. Unknown ids are
// simply absent from the map; callers attach nil for them.
func (r *userResolver) BatchResolve(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*dto.UserSummary, error) {
	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	result := make(map[uuid.UUID]*dto.UserSummary, len(unique))
	if len(unique) == 0 {
		return result, nil
	}

	users, err := r.users.FindByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		result[u.Id] = summarize(u)
	}
	return result, nil
}

// Resolve fetches a single summary, nil when the reference is unset or
// unresolvable.
func (r *userResolver) Resolve(ctx context.Context, id *uuid.UUID) (*dto.UserSummary, error) {
	if id == nil || *id == uuid.Nil {
		return nil, nil
	}
	u, err := r.users.FindByID(ctx, *id)
	if err != nil {
		return nil, err
	}
	return summarize(u), nil
}

// collectUserRefs gathers the referenced user ids across a result set.
func collectUserRefs(records []*entity.Record) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(records)*2)
	for _, rec := range records {
		if rec.CreatedBy != nil {
			ids = append(ids, *rec.CreatedBy)
		}
		if rec.UpdatedBy != nil {
			ids = append(ids, *rec.UpdatedBy)
		}
	}
	return ids
}

func lookupSummary(m map[uuid.UUID]*dto.UserSummary, id *uuid.UUID) *dto.UserSummary {
	if id == nil {
		return nil
	}
	return m[*id]
}
