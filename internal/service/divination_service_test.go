package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/tianji/internal/contract"
	"github.com/alexanderramin/tianji/internal/domain"
	"github.com/alexanderramin/tianji/internal/intelligence"
	"github.com/alexanderramin/tianji/internal/llm"
	"github.com/alexanderramin/tianji/internal/repository"
	"github.com/alexanderramin/tianji/internal/testutil"
	"github.com/alexanderramin/tianji/internal/zhouyi"
)

type divinationFixture struct {
	svc      DivinationService
	profile  *domain.Profile
	profiles repository.ProfileRepo
	readings repository.ReadingRepo
}

func setupDivination(t *testing.T, analysis intelligence.AnalysisService) divinationFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	profiles := repository.NewSQLiteProfileRepo(database)
	profile := testutil.NewTestProfile()
	require.NoError(t, profiles.Create(ctx, profile))

	svc := NewDivinationService(
		profiles,
		testutil.NewTestUoW(database),
		zhouyi.NewCasterWithSource(rand.NewSource(7)),
		analysis,
	)
	return divinationFixture{
		svc:      svc,
		profile:  profile,
		profiles: profiles,
		readings: repository.NewSQLiteReadingRepo(database),
	}
}

func divineAt(profileID, question string, at time.Time) contract.DivineRequest {
	return contract.DivineRequest{ProfileID: profileID, Question: question, Now: &at}
}

func TestDivinationService_Divine_FreshProfile(t *testing.T) {
	fx := setupDivination(t, nil)
	ctx := context.Background()

	// 04:00 UTC is noon in Beijing: well inside the quota day.
	at := time.Date(2026, time.August, 23, 4, 0, 0, 0, time.UTC)
	resp, err := fx.svc.Divine(ctx, divineAt(fx.profile.ID, "今年财运如何", at))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Cast.Original.Name)
	assert.Len(t, resp.Cast.LineTypes, 6)
	assert.Equal(t, "deterministic", resp.Reading.Source)
	assert.Contains(t, resp.Reading.Text, "本卦")
	require.NotEmpty(t, resp.SavedReadingID)

	stored, err := fx.readings.GetByID(ctx, resp.SavedReadingID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReadingDivination, stored.Kind)
	assert.Equal(t, resp.Cast.Original.Name, stored.Topic)
	assert.Equal(t, "今年财运如何", stored.Question)
	assert.Equal(t, resp.Reading.Text, stored.Content)

	last, err := fx.profiles.LastDivination(ctx, fx.profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-23", last)
}

func TestDivinationService_Divine_SameDayBlocked(t *testing.T) {
	fx := setupDivination(t, nil)
	ctx := context.Background()

	morning := time.Date(2026, time.August, 23, 1, 0, 0, 0, time.UTC)
	_, err := fx.svc.Divine(ctx, divineAt(fx.profile.ID, "", morning))
	require.NoError(t, err)

	evening := morning.Add(10 * time.Hour)
	_, err = fx.svc.Divine(ctx, divineAt(fx.profile.ID, "再问一次", evening))
	require.Error(t, err)

	var divineErr *contract.DivineError
	require.ErrorAs(t, err, &divineErr)
	assert.Equal(t, contract.DivineErrQuotaExhausted, divineErr.Code)

	// The refused attempt leaves no trace.
	list, err := fx.readings.ListByProfile(ctx, fx.profile.ID, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	last, err := fx.profiles.LastDivination(ctx, fx.profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-23", last)
}

func TestDivinationService_Divine_NextDayAvailable(t *testing.T) {
	fx := setupDivination(t, nil)
	ctx := context.Background()

	day1 := time.Date(2026, time.August, 23, 4, 0, 0, 0, time.UTC)
	_, err := fx.svc.Divine(ctx, divineAt(fx.profile.ID, "", day1))
	require.NoError(t, err)

	day2 := day1.AddDate(0, 0, 1)
	_, err = fx.svc.Divine(ctx, divineAt(fx.profile.ID, "", day2))
	require.NoError(t, err)

	list, err := fx.readings.ListByProfile(ctx, fx.profile.ID, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	last, err := fx.profiles.LastDivination(ctx, fx.profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-24", last)
}

func TestDivinationService_Divine_QuotaDayRollsOverAtCSTMidnight(t *testing.T) {
	fx := setupDivination(t, nil)
	ctx := context.Background()

	// Both instants share a UTC date, but midnight Beijing time lies
	// between them.
	beforeMidnight := time.Date(2026, time.August, 23, 15, 59, 0, 0, time.UTC)
	_, err := fx.svc.Divine(ctx, divineAt(fx.profile.ID, "", beforeMidnight))
	require.NoError(t, err)

	afterMidnight := time.Date(2026, time.August, 23, 16, 1, 0, 0, time.UTC)
	_, err = fx.svc.Divine(ctx, divineAt(fx.profile.ID, "", afterMidnight))
	require.NoError(t, err, "new CST day should refresh the quota")
}

func TestDivinationService_Divine_UnknownProfile(t *testing.T) {
	fx := setupDivination(t, nil)

	at := time.Date(2026, time.August, 23, 4, 0, 0, 0, time.UTC)
	_, err := fx.svc.Divine(context.Background(), divineAt("nobody", "", at))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDivinationService_Divine_RollbackKeepsQuota(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	profiles := repository.NewSQLiteProfileRepo(database)
	profile := testutil.NewTestProfile()
	require.NoError(t, profiles.Create(ctx, profile))

	// First exec consumes the quota, second stores the reading; failing
	// the second must roll back the first.
	boom := errors.New("disk full")
	failing := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: boom}
	svc := NewDivinationService(profiles, failing, zhouyi.NewCasterWithSource(rand.NewSource(7)), nil)

	at := time.Date(2026, time.August, 23, 4, 0, 0, 0, time.UTC)
	_, err := svc.Divine(ctx, divineAt(profile.ID, "", at))
	require.ErrorIs(t, err, boom)

	last, err := profiles.LastDivination(ctx, profile.ID)
	require.NoError(t, err)
	assert.Empty(t, last, "failed casting must not consume the quota")

	list, err := repository.NewSQLiteReadingRepo(database).ListByProfile(ctx, profile.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, list)

	// With a healthy unit of work the same day works again.
	healthy := NewDivinationService(profiles, testutil.NewTestUoW(database), zhouyi.NewCasterWithSource(rand.NewSource(7)), nil)
	_, err = healthy.Divine(ctx, divineAt(profile.ID, "", at))
	require.NoError(t, err)
}

func TestDivinationService_Divine_LLMReading(t *testing.T) {
	srv := newChatServer(t, "神机已动，此卦主吉。")
	defer srv.Close()

	analysis := intelligence.NewAnalysisService(testLLMClient(srv.URL), llm.NoopObserver{})
	fx := setupDivination(t, analysis)
	ctx := context.Background()

	at := time.Date(2026, time.August, 23, 4, 0, 0, 0, time.UTC)
	resp, err := fx.svc.Divine(ctx, divineAt(fx.profile.ID, "该不该搬家", at))
	require.NoError(t, err)

	assert.Equal(t, "llm", resp.Reading.Source)
	assert.Equal(t, "test-model", resp.Reading.Model)
	assert.Equal(t, "神机已动，此卦主吉。", resp.Reading.Text)

	stored, err := fx.readings.GetByID(ctx, resp.SavedReadingID)
	require.NoError(t, err)
	assert.Equal(t, "神机已动，此卦主吉。", stored.Content)
	assert.Equal(t, "test-model", stored.Model)
}
