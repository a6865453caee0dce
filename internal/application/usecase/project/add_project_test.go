package project

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/studenthub/profile-api/internal/domain/profile"
	"github.com/studenthub/profile-api/internal/domain/project"
	"github.com/studenthub/profile-api/pkg/apperror"
	"github.com/studenthub/profile-api/pkg/logger"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, fields ...zap.Field)             {}
func (nopLogger) Warn(msg string, fields ...zap.Field)             {}
func (nopLogger) Error(msg string, err error, fields ...zap.Field) {}
func (nopLogger) Fatal(msg string, err error, fields ...zap.Field) {}
func (nopLogger) With(fields ...zap.Field) logger.Logger           { return nopLogger{} }

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*profile.Profile
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *profile.Profile) error { return nil }
func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, apperror.NewNotFound("profile", userID.String())
	}
	return p, nil
}
func (f *fakeProfileRepo) Update(ctx context.Context, p *profile.Profile) error       { return nil }
func (f *fakeProfileRepo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error { return nil }
func (f *fakeProfileRepo) ReplaceSkills(ctx context.Context, profileID uuid.UUID, names []string) error {
	return nil
}
func (f *fakeProfileRepo) InsertSkills(ctx context.Context, profileID uuid.UUID, names []string) error {
	return nil
}
func (f *fakeProfileRepo) ListSkills(ctx context.Context, profileID uuid.UUID) ([]profile.Skill, error) {
	return nil, nil
}

type fakeProjectRepo struct {
	saved      []*project.Project
	imageCalls map[uuid.UUID][]string
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{imageCalls: make(map[uuid.UUID][]string)}
}

func (f *fakeProjectRepo) Save(ctx context.Context, p *project.Project) error {
	cp := *p
	f.saved = append(f.saved, &cp)
	return nil
}

func (f *fakeProjectRepo) InsertImages(ctx context.Context, projectID uuid.UUID, urls []string) error {
	f.imageCalls[projectID] = append(f.imageCalls[projectID], urls...)
	return nil
}

func (f *fakeProjectRepo) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*project.Project, error) {
	var out []*project.Project
	for _, p := range f.saved {
		if p.ProfileID == profileID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeViewCache struct {
	invalidated []uuid.UUID
}

func (f *fakeViewCache) Get(ctx context.Context, userID uuid.UUID) ([]byte, error)       { return nil, nil }
func (f *fakeViewCache) Set(ctx context.Context, userID uuid.UUID, payload []byte) error { return nil }
func (f *fakeViewCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	f.invalidated = append(f.invalidated, userID)
	return nil
}

func Test_AddProject_DropsEmptyImageTokens(t *testing.T) {
	userID := uuid.New()
	profileID := uuid.New()
	profileRepo := &fakeProfileRepo{profiles: map[uuid.UUID]*profile.Profile{
		userID: {ID: profileID, UserID: userID, Name: "Ada"},
	}}
	projRepo := newFakeProjectRepo()
	cache := &fakeViewCache{}
	uc := NewAddProjectUseCase(projRepo, profileRepo, cache, nopLogger{})

	output, err := uc.Execute(context.Background(), AddProjectInput{
		UserID:    userID,
		Name:      "Portfolio",
		ImageURLs: "a.png, , b.png",
	})

	require.NoError(t, err)
	require.Len(t, projRepo.saved, 1)
	assert.Equal(t, []string{"a.png", "b.png"}, projRepo.imageCalls[output.Project.ID])
	require.Len(t, output.Project.Images, 2)
	assert.Equal(t, "a.png", output.Project.Images[0].URL)
	assert.Equal(t, "b.png", output.Project.Images[1].URL)
	assert.Contains(t, cache.invalidated, userID)
}

func Test_AddProject_NoImagesSkipsInsert(t *testing.T) {
	userID := uuid.New()
	profileRepo := &fakeProfileRepo{profiles: map[uuid.UUID]*profile.Profile{
		userID: {ID: uuid.New(), UserID: userID, Name: "Ada"},
	}}
	projRepo := newFakeProjectRepo()
	uc := NewAddProjectUseCase(projRepo, profileRepo, &fakeViewCache{}, nopLogger{})

	output, err := uc.Execute(context.Background(), AddProjectInput{
		UserID: userID,
		Name:   "Portfolio",
	})

	require.NoError(t, err)
	assert.Empty(t, projRepo.imageCalls)
	assert.Empty(t, output.Project.Images)
}

func Test_AddProject_RequiresName(t *testing.T) {
	projRepo := newFakeProjectRepo()
	uc := NewAddProjectUseCase(projRepo, &fakeProfileRepo{profiles: map[uuid.UUID]*profile.Profile{}}, &fakeViewCache{}, nopLogger{})

	_, err := uc.Execute(context.Background(), AddProjectInput{UserID: uuid.New()})

	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	assert.Empty(t, projRepo.saved)
}

func Test_ListProjects_ScopedToCallerProfile(t *testing.T) {
	userID := uuid.New()
	profileID := uuid.New()
	profileRepo := &fakeProfileRepo{profiles: map[uuid.UUID]*profile.Profile{
		userID: {ID: profileID, UserID: userID, Name: "Ada"},
	}}
	projRepo := newFakeProjectRepo()
	projRepo.saved = []*project.Project{
		{ID: uuid.New(), ProfileID: profileID, Name: "Mine"},
		{ID: uuid.New(), ProfileID: uuid.New(), Name: "Someone else's"},
	}
	uc := NewListProjectsUseCase(projRepo, profileRepo, nopLogger{})

	output, err := uc.Execute(context.Background(), ListProjectsInput{UserID: userID})

	require.NoError(t, err)
	require.Len(t, output.Projects, 1)
	assert.Equal(t, "Mine", output.Projects[0].Name)
}

func Test_ListProjects_WithoutProfileIsNotFound(t *testing.T) {
	uc := NewListProjectsUseCase(newFakeProjectRepo(), &fakeProfileRepo{profiles: map[uuid.UUID]*profile.Profile{}}, nopLogger{})

	_, err := uc.Execute(context.Background(), ListProjectsInput{UserID: uuid.New()})

	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}
