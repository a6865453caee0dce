package education

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/studenthub/profile-api/internal/domain/education"
	"github.com/studenthub/profile-api/internal/domain/profile"
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
func (f *fakeProfileRepo) Update(ctx context.Context, p *profile.Profile) error      { return nil }
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

type fakeEducationRepo struct {
	entries map[uuid.UUID]*education.Education

	updated []uuid.UUID
	deleted []uuid.UUID
}

func newFakeEducationRepo() *fakeEducationRepo {
	return &fakeEducationRepo{entries: make(map[uuid.UUID]*education.Education)}
}

func (f *fakeEducationRepo) Save(ctx context.Context, e *education.Education) error {
	cp := *e
	f.entries[e.ID] = &cp
	return nil
}

func (f *fakeEducationRepo) Update(ctx context.Context, e *education.Education) error {
	if _, ok := f.entries[e.ID]; !ok {
		return apperror.NewNotFound("education", e.ID.String())
	}
	cp := *e
	f.entries[e.ID] = &cp
	f.updated = append(f.updated, e.ID)
	return nil
}

func (f *fakeEducationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.entries[id]; !ok {
		return apperror.NewNotFound("education", id.String())
	}
	delete(f.entries, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeEducationRepo) FindByID(ctx context.Context, id uuid.UUID) (*education.Education, error) {
	e, ok := f.entries[id]
	if !ok {
		return nil, apperror.NewNotFound("education", id.String())
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEducationRepo) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*education.Education, error) {
	var out []*education.Education
	for _, e := range f.entries {
		if e.ProfileID == profileID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeViewCache struct {
	invalidated []uuid.UUID
}

func (f *fakeViewCache) Get(ctx context.Context, userID uuid.UUID) ([]byte, error) { return nil, nil }
func (f *fakeViewCache) Set(ctx context.Context, userID uuid.UUID, payload []byte) error {
	return nil
}
func (f *fakeViewCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	f.invalidated = append(f.invalidated, userID)
	return nil
}

type educationFixture struct {
	profileRepo   *fakeProfileRepo
	educationRepo *fakeEducationRepo
	cache         *fakeViewCache

	userID    uuid.UUID
	profileID uuid.UUID
}

func newEducationFixture() *educationFixture {
	userID := uuid.New()
	profileID := uuid.New()
	return &educationFixture{
		profileRepo: &fakeProfileRepo{profiles: map[uuid.UUID]*profile.Profile{
			userID: {ID: profileID, UserID: userID, Name: "Ada"},
		}},
		educationRepo: newFakeEducationRepo(),
		cache:         &fakeViewCache{},
		userID:        userID,
		profileID:     profileID,
	}
}

func (f *educationFixture) seedEntry(profileID uuid.UUID) *education.Education {
	e := &education.Education{
		ID:          uuid.New(),
		ProfileID:   profileID,
		Institution: "MIT",
		StartDate:   time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	f.educationRepo.entries[e.ID] = e
	return e
}

func Test_AddEducation_BlankEndDateMeansOngoing(t *testing.T) {
	f := newEducationFixture()
	uc := NewAddEducationUseCase(f.educationRepo, f.profileRepo, f.cache, nopLogger{})

	output, err := uc.Execute(context.Background(), AddEducationInput{
		UserID:      f.userID,
		Institution: "MIT",
		StartDate:   "2020-09-01",
		EndDate:     "",
	})

	require.NoError(t, err)
	assert.Nil(t, output.Education.EndDate)
	assert.Equal(t, f.profileID, output.Education.ProfileID)
	assert.Contains(t, f.cache.invalidated, f.userID)
}

func Test_AddEducation_ParsesBothDates(t *testing.T) {
	f := newEducationFixture()
	uc := NewAddEducationUseCase(f.educationRepo, f.profileRepo, f.cache, nopLogger{})

	output, err := uc.Execute(context.Background(), AddEducationInput{
		UserID:      f.userID,
		Institution: "MIT",
		StartDate:   "2020-09-01",
		EndDate:     "2024-06-30",
	})

	require.NoError(t, err)
	require.NotNil(t, output.Education.EndDate)
	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), *output.Education.EndDate)
}

func Test_AddEducation_MalformedStartDateIsRejected(t *testing.T) {
	f := newEducationFixture()
	uc := NewAddEducationUseCase(f.educationRepo, f.profileRepo, f.cache, nopLogger{})

	_, err := uc.Execute(context.Background(), AddEducationInput{
		UserID:      f.userID,
		Institution: "MIT",
		StartDate:   "September 2020",
	})

	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	assert.Empty(t, f.educationRepo.entries)
}

func Test_AddEducation_WithoutProfileIsNotFound(t *testing.T) {
	f := newEducationFixture()
	uc := NewAddEducationUseCase(f.educationRepo, f.profileRepo, f.cache, nopLogger{})

	_, err := uc.Execute(context.Background(), AddEducationInput{
		UserID:      uuid.New(),
		Institution: "MIT",
		StartDate:   "2020-09-01",
	})

	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.Empty(t, f.educationRepo.entries)
}

func Test_UpdateEducation_ForeignEntryIsDenied(t *testing.T) {
	f := newEducationFixture()
	uc := NewUpdateEducationUseCase(f.educationRepo, f.profileRepo, f.cache, nopLogger{})

	foreign := f.seedEntry(uuid.New())

	_, err := uc.Execute(context.Background(), UpdateEducationInput{
		UserID:      f.userID,
		EducationID: foreign.ID,
		Institution: "Hijacked",
		StartDate:   "2020-09-01",
	})

	assert.True(t, errors.Is(err, apperror.ErrPermission))
	assert.Empty(t, f.educationRepo.updated)
	assert.Equal(t, "MIT", f.educationRepo.entries[foreign.ID].Institution)
	assert.Empty(t, f.cache.invalidated)
}

func Test_UpdateEducation_OwnEntrySucceeds(t *testing.T) {
	f := newEducationFixture()
	uc := NewUpdateEducationUseCase(f.educationRepo, f.profileRepo, f.cache, nopLogger{})

	own := f.seedEntry(f.profileID)

	output, err := uc.Execute(context.Background(), UpdateEducationInput{
		UserID:      f.userID,
		EducationID: own.ID,
		Institution: "Stanford",
		StartDate:   "2021-09-01",
		EndDate:     "",
	})

	require.NoError(t, err)
	assert.Equal(t, "Stanford", output.Education.Institution)
	assert.Nil(t, output.Education.EndDate)
	assert.Equal(t, []uuid.UUID{own.ID}, f.educationRepo.updated)
	assert.Contains(t, f.cache.invalidated, f.userID)
}

func Test_UpdateEducation_MissingEntryIsNotFound(t *testing.T) {
	f := newEducationFixture()
	uc := NewUpdateEducationUseCase(f.educationRepo, f.profileRepo, f.cache, nopLogger{})

	_, err := uc.Execute(context.Background(), UpdateEducationInput{
		UserID:      f.userID,
		EducationID: uuid.New(),
		Institution: "MIT",
		StartDate:   "2020-09-01",
	})

	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func Test_DeleteEducation_ForeignEntryIsDenied(t *testing.T) {
	f := newEducationFixture()
	uc := NewDeleteEducationUseCase(f.educationRepo, f.profileRepo, f.cache, nopLogger{})

	foreign := f.seedEntry(uuid.New())

	err := uc.Execute(context.Background(), DeleteEducationInput{
		UserID:      f.userID,
		EducationID: foreign.ID,
	})

	assert.True(t, errors.Is(err, apperror.ErrPermission))
	assert.Contains(t, f.educationRepo.entries, foreign.ID)
}

func Test_DeleteEducation_OwnEntrySucceeds(t *testing.T) {
	f := newEducationFixture()
	uc := NewDeleteEducationUseCase(f.educationRepo, f.profileRepo, f.cache, nopLogger{})

	own := f.seedEntry(f.profileID)

	err := uc.Execute(context.Background(), DeleteEducationInput{
		UserID:      f.userID,
		EducationID: own.ID,
	})

	require.NoError(t, err)
	assert.NotContains(t, f.educationRepo.entries, own.ID)
	assert.Contains(t, f.cache.invalidated, f.userID)
}
