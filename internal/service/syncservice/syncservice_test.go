package syncservice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/panelmart/internal/domain"
	"github.com/GlebRadaev/panelmart/internal/panelapi"
)

type mocks struct {
	resellerRepo *MockResellerRepo
	panelRepo    *MockPanelRepo
	mirrorRepo   *MockMirrorRepo
	gateway      *panelapi.MockGatewayI
	cipher       *MockCipher
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		resellerRepo: NewMockResellerRepo(ctrl),
		panelRepo:    NewMockPanelRepo(ctrl),
		mirrorRepo:   NewMockMirrorRepo(ctrl),
		gateway:      panelapi.NewMockGatewayI(ctrl),
		cipher:       NewMockCipher(ctrl),
	}
	service := New(m.resellerRepo, m.panelRepo, m.mirrorRepo, m.gateway, m.cipher)
	defer ctrl.Finish()
	return service, m
}

var (
	testReseller = &domain.Reseller{ID: 1, RemoteAdminID: 7}
	testPanel    = &domain.Panel{ID: 2, Name: "eu-1", APIURL: "https://panel.example.com", AdminUsername: "admin", EncryptedPassword: "enc"}
)

func prepareHappyPath(m *mocks, remoteUsers []panelapi.UserPayload) {
	m.resellerRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testReseller, nil)
	m.resellerRepo.EXPECT().HasPanelAccess(gomock.Any(), 1, 2).Return(true, nil)
	m.panelRepo.EXPECT().FindByID(gomock.Any(), 2).Return(testPanel, nil)
	m.cipher.EXPECT().Decrypt("enc").Return("secret", nil)
	m.gateway.EXPECT().Authenticate(testPanel.APIURL, "admin", "secret").Return("token", nil)
	m.gateway.EXPECT().ListUsers(testPanel.APIURL, "token").Return(remoteUsers, nil)
}

func TestSyncPanel(t *testing.T) {
	t.Run("Discovers new users and refreshes known ones", func(t *testing.T) {
		service, m := NewMock(t)

		remote := []panelapi.UserPayload{
			{Username: "alice", CreatorAdminID: 7, Raw: json.RawMessage(`{"username":"alice"}`)},
			{Username: "bob", CreatorAdminID: 7, Raw: json.RawMessage(`{"username":"bob"}`)},
			{Username: "mallory", CreatorAdminID: 9, Raw: json.RawMessage(`{"username":"mallory"}`)},
		}
		prepareHappyPath(m, remote)

		m.mirrorRepo.EXPECT().FindByUsernameAndPanel(gomock.Any(), "alice", 2).Return(&domain.UserMirror{ID: 33}, nil)
		m.mirrorRepo.EXPECT().RefreshPayload(gomock.Any(), 33, remote[0].Raw, nil).Return(nil)
		m.mirrorRepo.EXPECT().FindByUsernameAndPanel(gomock.Any(), "bob", 2).Return(nil, nil)
		m.mirrorRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, mirror *domain.UserMirror) (*domain.UserMirror, error) {
				assert.Equal(t, "bob", mirror.Username)
				assert.False(t, mirror.CreatedLocally)
				assert.Equal(t, "Discovered via panel sync", mirror.Notes)
				return mirror, nil
			},
		)

		summary, err := service.SyncPanel(context.Background(), 1, 2)
		assert.NoError(t, err)
		assert.Equal(t, 2, summary.TotalFromAPI)
		assert.Equal(t, 1, summary.NewlyAdded)
		assert.Equal(t, 1, summary.Updated)
		assert.Empty(t, summary.Errors)
	})

	t.Run("Second pass over unchanged data adds nothing", func(t *testing.T) {
		service, m := NewMock(t)

		remote := []panelapi.UserPayload{
			{Username: "alice", CreatorAdminID: 7, Raw: json.RawMessage(`{"username":"alice"}`)},
		}
		prepareHappyPath(m, remote)

		m.mirrorRepo.EXPECT().FindByUsernameAndPanel(gomock.Any(), "alice", 2).Return(&domain.UserMirror{ID: 33}, nil)
		m.mirrorRepo.EXPECT().RefreshPayload(gomock.Any(), 33, remote[0].Raw, nil).Return(nil)

		summary, err := service.SyncPanel(context.Background(), 1, 2)
		assert.NoError(t, err)
		assert.Equal(t, 0, summary.NewlyAdded)
		assert.Equal(t, 1, summary.Updated)
	})

	t.Run("Record without username is a non-fatal error", func(t *testing.T) {
		service, m := NewMock(t)

		remote := []panelapi.UserPayload{
			{Username: "", CreatorAdminID: 7, Raw: json.RawMessage(`{}`)},
			{Username: "bob", CreatorAdminID: 7, Raw: json.RawMessage(`{"username":"bob"}`)},
		}
		prepareHappyPath(m, remote)

		m.mirrorRepo.EXPECT().FindByUsernameAndPanel(gomock.Any(), "bob", 2).Return(nil, nil)
		m.mirrorRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, mirror *domain.UserMirror) (*domain.UserMirror, error) {
				return mirror, nil
			},
		)

		summary, err := service.SyncPanel(context.Background(), 1, 2)
		assert.NoError(t, err)
		assert.Equal(t, 2, summary.TotalFromAPI)
		assert.Equal(t, 1, summary.NewlyAdded)
		assert.Len(t, summary.Errors, 1)
	})

	t.Run("No panel access", func(t *testing.T) {
		service, m := NewMock(t)

		m.resellerRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testReseller, nil)
		m.resellerRepo.EXPECT().HasPanelAccess(gomock.Any(), 1, 2).Return(false, nil)

		_, err := service.SyncPanel(context.Background(), 1, 2)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("Panel auth failure is fatal", func(t *testing.T) {
		service, m := NewMock(t)

		m.resellerRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testReseller, nil)
		m.resellerRepo.EXPECT().HasPanelAccess(gomock.Any(), 1, 2).Return(true, nil)
		m.panelRepo.EXPECT().FindByID(gomock.Any(), 2).Return(testPanel, nil)
		m.cipher.EXPECT().Decrypt("enc").Return("secret", nil)
		m.gateway.EXPECT().Authenticate(testPanel.APIURL, "admin", "secret").Return("", panelapi.ErrAuthFailed)

		_, err := service.SyncPanel(context.Background(), 1, 2)
		assert.ErrorIs(t, err, panelapi.ErrAuthFailed)
	})

	t.Run("Credential decryption failure is fatal", func(t *testing.T) {
		service, m := NewMock(t)

		m.resellerRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testReseller, nil)
		m.resellerRepo.EXPECT().HasPanelAccess(gomock.Any(), 1, 2).Return(true, nil)
		m.panelRepo.EXPECT().FindByID(gomock.Any(), 2).Return(testPanel, nil)
		m.cipher.EXPECT().Decrypt("enc").Return("", errors.New("bad key"))

		_, err := service.SyncPanel(context.Background(), 1, 2)
		assert.ErrorIs(t, err, ErrPanelCredentials)
	})
}
