package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studenthub/profile-api/adapters/event"
	"github.com/studenthub/profile-api/internal/domain/profile"
	"github.com/studenthub/profile-api/pkg/apperror"
)

func seedProfile(repo *fakeProfileRepo, userID uuid.UUID, image string) *profile.Profile {
	p := &profile.Profile{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         "Ada",
		ProfileImage: image,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	repo.profiles[userID] = p
	return p
}

func Test_UpdateProfile_RequiresExistingProfile(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := NewUpdateProfileUseCase(repo, newFakeViewCache(), newFakeEventPublisher(), nopLogger{})

	_, err := uc.Execute(context.Background(), UpdateProfileInput{UserID: uuid.New(), Name: "Ada"})

	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.Empty(t, repo.replaceCalls)
}

func Test_UpdateProfile_ReplacesSkillsVerbatim(t *testing.T) {
	repo := newFakeProfileRepo()
	cache := newFakeViewCache()
	events := newFakeEventPublisher()
	uc := NewUpdateProfileUseCase(repo, cache, events, nopLogger{})

	userID := uuid.New()
	p := seedProfile(repo, userID, "")
	repo.skills[p.ID] = []profile.Skill{
		{ID: uuid.New(), ProfileID: p.ID, Name: "Python"},
		{ID: uuid.New(), ProfileID: p.ID, Name: "C"},
	}

	_, err := uc.Execute(context.Background(), UpdateProfileInput{
		UserID: userID,
		Name:   "Ada",
		Skills: "Go, Go, Rust",
	})

	require.NoError(t, err)
	require.Len(t, repo.replaceCalls, 1)
	assert.Equal(t, []string{"Go", "Go", "Rust"}, repo.replaceCalls[0])

	skills, _ := repo.ListSkills(context.Background(), p.ID)
	assert.Len(t, skills, 3)
	assert.Contains(t, cache.invalidated, userID)

	payload := waitForProfileEvent(t, events)
	assert.Equal(t, event.ProfileEventTypeUpdated, payload.EventType)
}

func Test_UpdateProfile_EmptySkillsClearsAllRows(t *testing.T) {
	repo := newFakeProfileRepo()
	events := newFakeEventPublisher()
	uc := NewUpdateProfileUseCase(repo, newFakeViewCache(), events, nopLogger{})

	userID := uuid.New()
	p := seedProfile(repo, userID, "")
	repo.skills[p.ID] = []profile.Skill{{ID: uuid.New(), ProfileID: p.ID, Name: "Python"}}

	_, err := uc.Execute(context.Background(), UpdateProfileInput{UserID: userID, Name: "Ada", Skills: ""})

	require.NoError(t, err)
	require.Len(t, repo.replaceCalls, 1)
	assert.Empty(t, repo.replaceCalls[0])

	skills, _ := repo.ListSkills(context.Background(), p.ID)
	assert.Empty(t, skills)
	waitForProfileEvent(t, events)
}

func Test_UpdateProfile_LastWriteWins(t *testing.T) {
	repo := newFakeProfileRepo()
	events := newFakeEventPublisher()
	uc := NewUpdateProfileUseCase(repo, newFakeViewCache(), events, nopLogger{})

	userID := uuid.New()
	seedProfile(repo, userID, "")

	// There is no version check or lock: overlapping updates both succeed
	// and the later one's fields stand.
	_, err := uc.Execute(context.Background(), UpdateProfileInput{
		UserID:     userID,
		Name:       "Ada",
		Profession: "Mathematician",
		Skills:     "Analysis",
	})
	require.NoError(t, err)
	waitForProfileEvent(t, events)

	_, err = uc.Execute(context.Background(), UpdateProfileInput{
		UserID:     userID,
		Name:       "Ada Lovelace",
		Profession: "Engineer",
		Skills:     "Go",
	})
	require.NoError(t, err)
	waitForProfileEvent(t, events)

	final, err := repo.GetByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", final.Name)
	assert.Equal(t, "Engineer", final.Profession)

	skills, _ := repo.ListSkills(context.Background(), final.ID)
	require.Len(t, skills, 1)
	assert.Equal(t, "Go", skills[0].Name)
}

func Test_UpdateProfile_ReplacedImagePublishesMediaEvent(t *testing.T) {
	repo := newFakeProfileRepo()
	events := newFakeEventPublisher()
	uc := NewUpdateProfileUseCase(repo, newFakeViewCache(), events, nopLogger{})

	userID := uuid.New()
	seedProfile(repo, userID, "https://img.example.com/old.png")

	_, err := uc.Execute(context.Background(), UpdateProfileInput{
		UserID:       userID,
		Name:         "Ada",
		ProfileImage: "https://img.example.com/new.png",
	})

	require.NoError(t, err)
	waitForProfileEvent(t, events)

	payload := waitForMediaEvent(t, events)
	assert.Equal(t, event.MediaEventTypeReplaced, payload.EventType)
	assert.Equal(t, "https://img.example.com/old.png", payload.URL)
}

func Test_UpdateProfile_UnchangedImagePublishesNoMediaEvent(t *testing.T) {
	repo := newFakeProfileRepo()
	events := newFakeEventPublisher()
	uc := NewUpdateProfileUseCase(repo, newFakeViewCache(), events, nopLogger{})

	userID := uuid.New()
	seedProfile(repo, userID, "https://img.example.com/same.png")

	_, err := uc.Execute(context.Background(), UpdateProfileInput{
		UserID:       userID,
		Name:         "Ada",
		ProfileImage: "https://img.example.com/same.png",
	})

	require.NoError(t, err)
	waitForProfileEvent(t, events)

	select {
	case payload := <-events.mediaEvents:
		t.Fatalf("unexpected media event: %+v", payload)
	case <-time.After(100 * time.Millisecond):
	}
}
