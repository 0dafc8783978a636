package services

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/Dosada05/mahjong-club/models"
	"github.com/Dosada05/mahjong-club/repositories"
	"github.com/Dosada05/mahjong-club/repositories/mocks"
	"github.com/Dosada05/mahjong-club/storage"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeUploader подменяет объектное хранилище в тестах.
type fakeUploader struct {
	uploaded []string
	deleted  []string
}

func (u *fakeUploader) Upload(_ context.Context, key, _ string, _ io.Reader) (*storage.UploadResult, error) {
	u.uploaded = append(u.uploaded, key)
	return &storage.UploadResult{Key: key}, nil
}

func (u *fakeUploader) Delete(_ context.Context, key string) error {
	u.deleted = append(u.deleted, key)
	return nil
}

func (u *fakeUploader) GetPublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

type PlayerServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockPlayerRepo *mocks.MockPlayerRepository
	uploader       *fakeUploader
	service        PlayerService
	ctx            context.Context
}

func (s *PlayerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPlayerRepo = mocks.NewMockPlayerRepository(s.mockCtrl)
	s.uploader = &fakeUploader{}
	s.service = NewPlayerService(s.mockPlayerRepo, s.uploader)
	s.ctx = context.Background()
}

func (s *PlayerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPlayerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerServiceTestSuite))
}

func (s *PlayerServiceTestSuite) TestGetOrCreateCreatesNewPlayer() {
	s.mockPlayerRepo.EXPECT().
		GetByName(s.ctx, "Alice").
		Return(nil, repositories.ErrPlayerNotFound)
	s.mockPlayerRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, player *models.Player) error {
			player.ID = 1
			return nil
		})

	player, created, err := s.service.GetOrCreateByName(s.ctx, "Alice")

	s.Require().NoError(err)
	s.True(created)
	s.Equal(1, player.ID)
	s.Equal("Alice", player.Name)
}

func (s *PlayerServiceTestSuite) TestGetOrCreateReturnsExisting() {
	existing := &models.Player{ID: 1, Name: "Alice"}
	s.mockPlayerRepo.EXPECT().GetByName(s.ctx, "Alice").Return(existing, nil)

	player, created, err := s.service.GetOrCreateByName(s.ctx, "Alice")

	s.Require().NoError(err)
	s.False(created)
	s.Equal(1, player.ID)
}

func (s *PlayerServiceTestSuite) TestGetOrCreateTrimsName() {
	existing := &models.Player{ID: 1, Name: "Alice"}
	s.mockPlayerRepo.EXPECT().GetByName(s.ctx, "Alice").Return(existing, nil)

	_, _, err := s.service.GetOrCreateByName(s.ctx, "  Alice  ")
	s.NoError(err)
}

// Гонка двух регистраций на одно имя: проигравший вставку забирает
// игрока, которого успел создать соперник.
func (s *PlayerServiceTestSuite) TestGetOrCreateRaceLoserAdoptsWinner() {
	winner := &models.Player{ID: 1, Name: "Alice"}

	first := s.mockPlayerRepo.EXPECT().
		GetByName(s.ctx, "Alice").
		Return(nil, repositories.ErrPlayerNotFound)
	s.mockPlayerRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(repositories.ErrPlayerNameConflict)
	s.mockPlayerRepo.EXPECT().
		GetByName(s.ctx, "Alice").
		Return(winner, nil).
		After(first)

	player, created, err := s.service.GetOrCreateByName(s.ctx, "Alice")

	s.Require().NoError(err)
	s.False(created)
	s.Equal(1, player.ID)
}

func (s *PlayerServiceTestSuite) TestGetOrCreateEmptyName() {
	_, _, err := s.service.GetOrCreateByName(s.ctx, "   ")
	s.ErrorIs(err, ErrPlayerNameRequired)
}

func (s *PlayerServiceTestSuite) TestGetByIDAttachesAvatarURL() {
	key := "avatars/player_1.png"
	s.mockPlayerRepo.EXPECT().
		GetByID(s.ctx, 1).
		Return(&models.Player{ID: 1, Name: "Alice", AvatarKey: &key}, nil)

	player, err := s.service.GetByID(s.ctx, 1)

	s.Require().NoError(err)
	s.Require().NotNil(player.AvatarURL)
	s.Equal("https://cdn.example.com/avatars/player_1.png", *player.AvatarURL)
}

func (s *PlayerServiceTestSuite) TestGetByIDNotFound() {
	s.mockPlayerRepo.EXPECT().
		GetByID(s.ctx, 99).
		Return(nil, repositories.ErrPlayerNotFound)

	_, err := s.service.GetByID(s.ctx, 99)
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *PlayerServiceTestSuite) TestUploadAvatar() {
	oldKey := "avatars/player_1.jpg"
	s.mockPlayerRepo.EXPECT().
		GetByID(s.ctx, 1).
		Return(&models.Player{ID: 1, Name: "Alice", AvatarKey: &oldKey}, nil)
	s.mockPlayerRepo.EXPECT().
		UpdateAvatarKey(s.ctx, 1, gomock.Any()).
		Return(nil)

	player, err := s.service.UploadAvatar(s.ctx, 1, "image/png", strings.NewReader("png-bytes"))

	s.Require().NoError(err)
	s.Equal([]string{"avatars/player_1.png"}, s.uploader.uploaded)
	// Старый объект с другим расширением удалён.
	s.Equal([]string{"avatars/player_1.jpg"}, s.uploader.deleted)
	s.Require().NotNil(player.AvatarURL)
}

func (s *PlayerServiceTestSuite) TestUploadAvatarUnsupportedType() {
	_, err := s.service.UploadAvatar(s.ctx, 1, "image/gif", strings.NewReader("gif-bytes"))
	s.ErrorIs(err, ErrAvatarInvalidFormat)
	s.Empty(s.uploader.uploaded)
}

func (s *PlayerServiceTestSuite) TestUploadAvatarStorageDisabled() {
	service := NewPlayerService(s.mockPlayerRepo, nil)

	_, err := service.UploadAvatar(s.ctx, 1, "image/png", strings.NewReader("png-bytes"))
	s.ErrorIs(err, ErrAvatarStorageDisabled)
}
