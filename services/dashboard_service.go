package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/mahjong-club/clock"
	"github.com/Dosada05/mahjong-club/models"
	"github.com/Dosada05/mahjong-club/repositories"
	"golang.org/x/sync/errgroup"
)

// DashboardService — движок агрегации: счётчики игрока и разбиение сессий
// на предстоящие и прошедшие с вложенными участниками и раундами.
type DashboardService interface {
	GetDashboard(ctx context.Context, playerID int) (*models.Dashboard, error)
}

type dashboardService struct {
	playerRepo     repositories.PlayerRepository
	sessionRepo    repositories.SessionRepository
	roundRepo      repositories.RoundRepository
	membershipRepo repositories.MembershipRepository
	clk            clock.Clock
}

func NewDashboardService(
	playerRepo repositories.PlayerRepository,
	sessionRepo repositories.SessionRepository,
	roundRepo repositories.RoundRepository,
	membershipRepo repositories.MembershipRepository,
	clk clock.Clock,
) DashboardService {
	return &dashboardService{
		playerRepo:     playerRepo,
		sessionRepo:    sessionRepo,
		roundRepo:      roundRepo,
		membershipRepo: membershipRepo,
		clk:            clk,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, playerID int) (*models.Dashboard, error) {
	if playerID <= 0 {
		return nil, ErrValidationFailed
	}

	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			// Обработчик трактует это как сигнал сбросить идентичность.
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to load dashboard player: %w", err)
	}

	dashboard := &models.Dashboard{Player: player}
	now := s.clk.Now()

	// Счётчики не хранятся — каждое чтение пересчитывает их по рёбрам.
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.membershipRepo.CountByPlayer(gCtx, models.SessionMembership, playerID)
		if err != nil {
			return fmt.Errorf("failed to count player sessions: %w", err)
		}
		dashboard.SessionCount = count
		return nil
	})

	g.Go(func() error {
		count, err := s.membershipRepo.CountByPlayer(gCtx, models.RoundMembership, playerID)
		if err != nil {
			return fmt.Errorf("failed to count player rounds: %w", err)
		}
		dashboard.RoundCount = count
		return nil
	})

	g.Go(func() error {
		count, err := s.roundRepo.CountWinsByPlayer(gCtx, playerID)
		if err != nil {
			return fmt.Errorf("failed to count player wins: %w", err)
		}
		dashboard.WinCount = count
		return nil
	})

	g.Go(func() error {
		sessions, err := s.sessionRepo.ListUpcomingWithDetails(gCtx, now)
		if err != nil {
			return fmt.Errorf("failed to list upcoming sessions: %w", err)
		}
		dashboard.UpcomingSessions = sessions
		return nil
	})

	g.Go(func() error {
		sessions, err := s.sessionRepo.ListPastWithDetails(gCtx, now)
		if err != nil {
			return fmt.Errorf("failed to list past sessions: %w", err)
		}
		dashboard.PastSessions = sessions
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	markJoinedRounds(dashboard.UpcomingSessions, playerID)
	markJoinedRounds(dashboard.PastSessions, playerID)

	return dashboard, nil
}

// markJoinedRounds проставляет флаг участия текущего игрока на раундах.
func markJoinedRounds(sessions []models.GameSession, playerID int) {
	for si := range sessions {
		for ri := range sessions[si].Rounds {
			round := &sessions[si].Rounds[ri]
			for _, member := range round.Players {
				if member.PlayerID == playerID {
					round.Joined = true
					break
				}
			}
		}
	}
}
