package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRepository struct {
	users map[uuid.UUID]*User
}

func newMockRepository() *mockRepository {
	return &mockRepository{users: make(map[uuid.UUID]*User)}
}

func (m *mockRepository) Create(ctx context.Context, u *User) error {
	copied := *u
	m.users[u.ID] = &copied
	return nil
}

func (m *mockRepository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *mockRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepository) Update(ctx context.Context, u *User) error {
	copied := *u
	m.users[u.ID] = &copied
	return nil
}

func newTestService(repo Repository) Service {
	return NewService(repo, nil, zap.NewNop())
}

func seedUser(t *testing.T, repo *mockRepository) *User {
	t.Helper()
	u := &User{
		ID:              uuid.New(),
		Email:           "jan@example.com",
		Username:        "jan",
		FullName:        "Jan Marshal",
		ProfileImageURL: "https://cdn.example.com/avatar.png",
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestRegister(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	u, err := svc.Register(context.Background(), "jan@example.com", "jan", "Jan Marshal")
	require.NoError(t, err)
	assert.Equal(t, "jan", u.Username)
	assert.False(t, u.HasProfileImage())

	_, err = svc.Register(context.Background(), "jan@example.com", "other", "Other")
	assert.ErrorIs(t, err, ErrEmailExists)

	_, err = svc.Register(context.Background(), "other@example.com", "jan", "Other")
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestGetByUsername(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)
	seeded := seedUser(t, repo)

	found, err := svc.GetByUsername(context.Background(), "jan")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, found.ID)

	_, err = svc.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateSettings(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)
	seeded := seedUser(t, repo)

	updated, result, err := svc.UpdateSettings(context.Background(), seeded.ID, map[string]string{
		FieldFullName:     "Jan M.",
		FieldProfileImage: "https://cdn.example.com/new.png",
	})
	require.NoError(t, err)
	require.True(t, result.Ok())
	assert.Equal(t, "Jan M.", updated.FullName)
	assert.Equal(t, "https://cdn.example.com/new.png", updated.ProfileImageURL)

	// Identity fields never change through settings.
	assert.Equal(t, seeded.Email, updated.Email)
	assert.Equal(t, seeded.Username, updated.Username)
}

func TestUpdateSettingsClearsImage(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)
	seeded := seedUser(t, repo)
	require.True(t, seeded.HasProfileImage())

	// An empty hidden field on submit erases the stored image.
	updated, result, err := svc.UpdateSettings(context.Background(), seeded.ID, map[string]string{
		FieldFullName:     seeded.FullName,
		FieldProfileImage: "",
	})
	require.NoError(t, err)
	require.True(t, result.Ok())
	assert.False(t, updated.HasProfileImage())
}

func TestUpdateSettingsValidation(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)
	seeded := seedUser(t, repo)

	_, result, err := svc.UpdateSettings(context.Background(), seeded.ID, map[string]string{
		FieldFullName:     "",
		FieldProfileImage: "not a url",
	})
	require.NoError(t, err)
	assert.False(t, result.Ok())
	assert.NotEmpty(t, result.Errors(FieldFullName))
	assert.NotEmpty(t, result.Errors(FieldProfileImage))

	// Nothing persisted on a rejected submit.
	stored, err := svc.Get(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.FullName, stored.FullName)
	assert.Equal(t, seeded.ProfileImageURL, stored.ProfileImageURL)
}
