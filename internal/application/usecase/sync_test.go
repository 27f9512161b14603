package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/diillson/wlan-autoassign-go/internal/domain/repository"
	"github.com/diillson/wlan-autoassign-go/pkg/logger"
)

func TestSyncProfiles_BatchSuccessSharesTimestamp(t *testing.T) {
	ctrl := newFakeController()
	syncer := NewProfileSyncer(ctrl, time.Second, logger.NewTestLogger())
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	syncer.now = func() time.Time { return at }

	results := syncer.SyncProfiles(context.Background(), []string{"p1", "p2", "p3"})

	require.Len(t, results, 3)
	for i, id := range []string{"p1", "p2", "p3"} {
		assert.Equal(t, id, results[i].ProfileID)
		assert.True(t, results[i].Success)
		require.NotNil(t, results[i].SyncedAt)
		assert.Equal(t, at, *results[i].SyncedAt)
	}
	assert.Equal(t, [][]string{{"p1", "p2", "p3"}}, ctrl.batchSynced)
	assert.Empty(t, ctrl.synced)
}

func TestSyncProfiles_FallsBackPerProfile(t *testing.T) {
	ctrl := newFakeController()
	ctrl.batchSyncErr = errBoom
	ctrl.syncErr["p2"] = errBoom
	syncer := NewProfileSyncer(ctrl, time.Second, logger.NewTestLogger())

	results := syncer.SyncProfiles(context.Background(), []string{"p1", "p2", "p3"})

	require.Len(t, results, 3)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.Equal(t, "boom", results[1].Error)
	assert.Nil(t, results[1].SyncedAt)
	assert.True(t, results[2].Success)
	assert.ElementsMatch(t, []string{"p1", "p2", "p3"}, ctrl.synced)
}

func TestSyncProfiles_EmptyInputMakesNoCalls(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	controller := repository.NewMockControllerRepository(mockCtrl)

	results := NewProfileSyncer(controller, 0, logger.NewTestLogger()).SyncProfiles(context.Background(), nil)

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSyncProfiles_BatchCallIsBoundedByCallTimeout(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	controller := repository.NewMockControllerRepository(mockCtrl)

	controller.EXPECT().
		SyncMultipleProfiles(gomock.Any(), []string{"p1"}).
		DoAndReturn(func(ctx context.Context, _ []string) error {
			<-ctx.Done()
			return ctx.Err()
		})
	controller.EXPECT().SyncProfile(gomock.Any(), "p1").Return(nil)

	results := NewProfileSyncer(controller, 10*time.Millisecond, logger.NewTestLogger()).
		SyncProfiles(context.Background(), []string{"p1"})

	require.Len(t, results, 1)
	assert.True(t, results[0].Success)
}
