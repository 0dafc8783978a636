package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ошибки валидации входных данных
	ErrValidationFailed   = errors.New("validation failed")
	ErrPlayerNameRequired = errors.New("player name is required")

	// Ресурс не найден
	ErrPlayerNotFound  = errors.New("player not found")
	ErrSessionNotFound = errors.New("game session not found")
	ErrRoundNotFound   = errors.New("game round not found")

	// Ошибки конфликтов
	ErrSessionDateConflict = errors.New("game session already exists for this date")
	ErrRoundNumberConflict = errors.New("game round with this number already exists for the session")
	ErrMembershipConflict  = errors.New("membership was changed concurrently, please retry")

	// Ошибки загрузки аватаров
	ErrAvatarUploadFailed      = errors.New("failed to upload avatar")
	ErrAvatarInvalidFormat     = errors.New("avatar must be a jpeg, png or webp image")
	ErrAvatarStorageDisabled   = errors.New("avatar storage is not configured")
	ErrRoundWinnerInvalid      = errors.New("round winner does not reference an existing player")
	ErrMembershipTargetMissing = errors.New("membership target does not exist")
)
