package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Dosada05/mahjong-club/models"
	"github.com/Dosada05/mahjong-club/repositories"
	"github.com/Dosada05/mahjong-club/storage"
)

// PlayerService инкапсулирует бизнес-логику для игроков клуба.
type PlayerService interface {
	// GetOrCreateByName возвращает игрока по имени, создавая его при
	// отсутствии. Второе значение — true, если игрок был создан.
	GetOrCreateByName(ctx context.Context, name string) (*models.Player, bool, error)
	GetByID(ctx context.Context, id int) (*models.Player, error)
	List(ctx context.Context) ([]models.Player, error)
	UploadAvatar(ctx context.Context, playerID int, contentType string, file io.Reader) (*models.Player, error)
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	uploader   storage.FileUploader
}

func NewPlayerService(playerRepo repositories.PlayerRepository, uploader storage.FileUploader) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
		uploader:   uploader,
	}
}

func (s *playerService) GetOrCreateByName(ctx context.Context, name string) (*models.Player, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, ErrPlayerNameRequired
	}

	player, err := s.playerRepo.GetByName(ctx, name)
	if err == nil {
		return s.withAvatarURL(player), false, nil
	}
	if !errors.Is(err, repositories.ErrPlayerNotFound) {
		return nil, false, fmt.Errorf("failed to look up player by name: %w", err)
	}

	player = &models.Player{Name: name}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		// Первый записавший выигрывает: при гонке двух регистраций на одно
		// имя проигравший просто забирает уже созданного игрока.
		if errors.Is(err, repositories.ErrPlayerNameConflict) {
			existing, lookupErr := s.playerRepo.GetByName(ctx, name)
			if lookupErr != nil {
				return nil, false, fmt.Errorf("failed to load player after name conflict: %w", lookupErr)
			}
			return s.withAvatarURL(existing), false, nil
		}
		return nil, false, err
	}
	return s.withAvatarURL(player), true, nil
}

func (s *playerService) GetByID(ctx context.Context, id int) (*models.Player, error) {
	if id <= 0 {
		return nil, ErrValidationFailed
	}
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return s.withAvatarURL(player), nil
}

func (s *playerService) List(ctx context.Context) ([]models.Player, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range players {
		s.withAvatarURL(&players[i])
	}
	return players, nil
}

var allowedAvatarTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

func (s *playerService) UploadAvatar(ctx context.Context, playerID int, contentType string, file io.Reader) (*models.Player, error) {
	if playerID <= 0 {
		return nil, ErrValidationFailed
	}
	if s.uploader == nil {
		return nil, ErrAvatarStorageDisabled
	}
	ext, ok := allowedAvatarTypes[contentType]
	if !ok {
		return nil, ErrAvatarInvalidFormat
	}

	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	key := fmt.Sprintf("avatars/player_%d.%s", playerID, ext)
	if _, err := s.uploader.Upload(ctx, key, contentType, file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAvatarUploadFailed, err)
	}

	// Старый объект с другим расширением больше не нужен.
	if player.AvatarKey != nil && *player.AvatarKey != key {
		_ = s.uploader.Delete(ctx, *player.AvatarKey)
	}

	if err := s.playerRepo.UpdateAvatarKey(ctx, playerID, &key); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	player.AvatarKey = &key
	return s.withAvatarURL(player), nil
}

func (s *playerService) withAvatarURL(player *models.Player) *models.Player {
	if player == nil || player.AvatarKey == nil || s.uploader == nil {
		return player
	}
	url := s.uploader.GetPublicURL(*player.AvatarKey)
	player.AvatarURL = &url
	return player
}
