package service

import (
	"context"
	"testing"
	"time"

	"teamspace-be/internal/dto"
	"teamspace-be/internal/entity"
	"teamspace-be/internal/pkg/logger"
	"teamspace-be/internal/repository/memory"

	"github.com/google/uuid"
)

// memoryPartitions satisfies PartitionManager over the in-memory record
// factory.
type memoryPartitions struct {
	records *memory.RecordRepositoryFactory
	dropErr error
}

func (p *memoryPartitions) Provision(ctx context.Context, workspaceId uuid.UUID) error {
	return nil
}

func (p *memoryPartitions) Drop(ctx context.Context, workspaceId uuid.UUID) error {
	if p.dropErr != nil {
		return p.dropErr
	}
	p.records.Drop(workspaceId)
	return nil
}

// capturePublisher records payloads published to the mail topic.
type capturePublisher struct {
	payloads [][]byte
}

func (p *capturePublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

// fixture wires the full service stack over in-memory storage.
type fixture struct {
	shared     *memory.Factory
	records    *memory.RecordRepositoryFactory
	partitions *memoryPartitions
	mail       *capturePublisher

	access     IAccessService
	auth       IAuthService
	workspaces IWorkspaceService
	members    IMemberService
	recordsSvc IRecordService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	shared := memory.NewFactory()
	records := memory.NewRecordRepositoryFactory()
	partitions := &memoryPartitions{records: records}
	mail := &capturePublisher{}
	log := logger.NewNopLogger()

	access := NewAccessService(shared)
	return &fixture{
		shared:     shared,
		records:    records,
		partitions: partitions,
		mail:       mail,
		access:     access,
		auth:       NewAuthService(shared, mail, "test-secret", "http://localhost:5173", log),
		workspaces: NewWorkspaceService(shared, access, partitions, nil, log),
		members:    NewMemberService(shared, access, mail, nil, "http://localhost:5173", log),
		recordsSvc: NewRecordService(shared, access, records),
	}
}

func (f *fixture) seedUser(t *testing.T, email string) uuid.UUID {
	t.Helper()
	hash := "$2a$10$seeded"
	u := &entity.User{
		Id:           uuid.New(),
		Email:        email,
		PasswordHash: &hash,
		Status:       entity.UserStatusActive,
		CreatedAt:    time.Now(),
	}
	if err := f.shared.Users.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u.Id
}

func (f *fixture) seedWorkspace(t *testing.T, ownerId uuid.UUID, name string) uuid.UUID {
	t.Helper()
	res, err := f.workspaces.Create(context.Background(), ownerId, &dto.CreateWorkspaceRequest{Name: name})
	if err != nil {
		t.Fatalf("seed workspace: %v", err)
	}
	return res.Id
}

func (f *fixture) seedMember(t *testing.T, workspaceId, userId uuid.UUID, role entity.MemberRole) {
	t.Helper()
	m := &entity.Membership{
		Id:          uuid.New(),
		WorkspaceId: workspaceId,
		UserId:      userId,
		Role:        role,
		CreatedAt:   time.Now(),
	}
	if err := f.shared.Memberships.Create(context.Background(), m); err != nil {
		t.Fatalf("seed membership: %v", err)
	}
}
