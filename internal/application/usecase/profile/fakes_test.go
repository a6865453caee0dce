package profile

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studenthub/profile-api/adapters/event"
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
	profiles map[uuid.UUID]*profile.Profile // keyed by user id
	skills   map[uuid.UUID][]profile.Skill  // keyed by profile id

	replaceCalls [][]string
	insertCalls  [][]string
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		profiles: make(map[uuid.UUID]*profile.Profile),
		skills:   make(map[uuid.UUID][]profile.Skill),
	}
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *profile.Profile) error {
	if _, exists := f.profiles[p.UserID]; exists {
		return apperror.NewConflict("profile", "user_id", p.UserID.String())
	}
	cp := *p
	f.profiles[p.UserID] = &cp
	return nil
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, apperror.NewNotFound("profile", userID.String())
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, p *profile.Profile) error {
	existing, ok := f.profiles[p.UserID]
	if !ok {
		return apperror.NewNotFound("profile", p.ID.String())
	}
	cp := *p
	cp.CreatedAt = existing.CreatedAt
	f.profiles[p.UserID] = &cp
	return nil
}

func (f *fakeProfileRepo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	p, ok := f.profiles[userID]
	if !ok {
		return apperror.NewNotFound("profile", userID.String())
	}
	delete(f.profiles, userID)
	delete(f.skills, p.ID)
	return nil
}

func (f *fakeProfileRepo) ReplaceSkills(ctx context.Context, profileID uuid.UUID, names []string) error {
	f.replaceCalls = append(f.replaceCalls, names)
	rows := make([]profile.Skill, len(names))
	for i, name := range names {
		rows[i] = profile.Skill{ID: uuid.New(), ProfileID: profileID, Name: name}
	}
	f.skills[profileID] = rows
	return nil
}

func (f *fakeProfileRepo) InsertSkills(ctx context.Context, profileID uuid.UUID, names []string) error {
	f.insertCalls = append(f.insertCalls, names)
	for _, name := range names {
		f.skills[profileID] = append(f.skills[profileID], profile.Skill{ID: uuid.New(), ProfileID: profileID, Name: name})
	}
	return nil
}

func (f *fakeProfileRepo) ListSkills(ctx context.Context, profileID uuid.UUID) ([]profile.Skill, error) {
	return f.skills[profileID], nil
}

type fakeViewCache struct {
	store       map[uuid.UUID][]byte
	invalidated []uuid.UUID
}

func newFakeViewCache() *fakeViewCache {
	return &fakeViewCache{store: make(map[uuid.UUID][]byte)}
}

func (f *fakeViewCache) Get(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	return f.store[userID], nil
}

func (f *fakeViewCache) Set(ctx context.Context, userID uuid.UUID, payload []byte) error {
	f.store[userID] = payload
	return nil
}

func (f *fakeViewCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	f.invalidated = append(f.invalidated, userID)
	delete(f.store, userID)
	return nil
}

type fakeEventPublisher struct {
	profileEvents chan event.ProfileEventPayload
	mediaEvents   chan event.MediaEventPayload
}

func newFakeEventPublisher() *fakeEventPublisher {
	return &fakeEventPublisher{
		profileEvents: make(chan event.ProfileEventPayload, 8),
		mediaEvents:   make(chan event.MediaEventPayload, 8),
	}
}

func (f *fakeEventPublisher) PublishProfileEvent(ctx context.Context, payload event.ProfileEventPayload) error {
	f.profileEvents <- payload
	return nil
}

func (f *fakeEventPublisher) PublishMediaEvent(ctx context.Context, payload event.MediaEventPayload) error {
	f.mediaEvents <- payload
	return nil
}
