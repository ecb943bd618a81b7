package ports

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/smashlog/smashlog/internal/app"
	"github.com/smashlog/smashlog/internal/domain"
)

// Timestamps are rendered without timezone, matching what the dashboard
// historically consumed.
const timestampLayout = "2006-01-02 15:04:05"
const dateLayout = "2006-01-02"

type sessionSummary struct {
	SessionID       string `json:"session_id"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	TotalGames      int    `json:"total_games"`
	PlayerOneWins   int    `json:"player_one_wins"`
	PlayerTwoWins   int    `json:"player_two_wins"`
	DurationMinutes int    `json:"duration_minutes"`
}

type sessionsResponse struct {
	Success  bool             `json:"success"`
	Sessions []sessionSummary `json:"sessions"`
}

func sessionToSummary(session *domain.Session) sessionSummary {
	return sessionSummary{
		SessionID:       session.ID,
		StartTime:       session.Start.Format(timestampLayout),
		EndTime:         session.End.Format(timestampLayout),
		TotalGames:      session.Games,
		PlayerOneWins:   session.WinsOne,
		PlayerTwoWins:   session.WinsTwo,
		DurationMinutes: session.DurationMinutes(),
	}
}

func SessionsToResponseData(sessions []domain.Session) ([]byte, error) {
	summaries := make([]sessionSummary, 0, len(sessions))
	for i := range sessions {
		summaries = append(summaries, sessionToSummary(&sessions[i]))
	}

	marshalled, err := json.Marshal(sessionsResponse{
		Success:  true,
		Sessions: summaries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sessions response: %w", err)
	}
	return marshalled, nil
}

type timelinePointData struct {
	SessionID       string `json:"session_id"`
	Date            string `json:"date"`
	DateTime        string `json:"datetime"`
	Games           int    `json:"games"`
	PlayerOneWins   int    `json:"player_one_wins"`
	PlayerTwoWins   int    `json:"player_two_wins"`
	DurationMinutes int    `json:"duration_minutes"`
}

type timelineResponse struct {
	Success       bool                `json:"success"`
	Data          []timelinePointData `json:"data"`
	TotalSessions int                 `json:"total_sessions"`
}

func timelinePointToData(point *domain.TimelinePoint) timelinePointData {
	return timelinePointData{
		SessionID:       point.SessionID,
		Date:            point.StartedAt.Format(dateLayout),
		DateTime:        point.StartedAt.Format(timestampLayout),
		Games:           point.GameCount,
		PlayerOneWins:   point.WinsOne,
		PlayerTwoWins:   point.WinsTwo,
		DurationMinutes: point.DurationMinutes,
	}
}

func TimelineToResponseData(points []domain.TimelinePoint) ([]byte, error) {
	data := make([]timelinePointData, 0, len(points))
	for i := range points {
		data = append(data, timelinePointToData(&points[i]))
	}

	marshalled, err := json.Marshal(timelineResponse{
		Success:       true,
		Data:          data,
		TotalSessions: len(data),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timeline response: %w", err)
	}
	return marshalled, nil
}

type chartResponse struct {
	Success bool      `json:"success"`
	Labels  []string  `json:"labels"`
	Games   []int     `json:"games"`
	Trend   []float64 `json:"trend"`
}

func ChartToResponseData(chart app.ChartData) ([]byte, error) {
	marshalled, err := json.Marshal(chartResponse{
		Success: true,
		Labels:  chart.Labels,
		Games:   chart.Games,
		Trend:   chart.Trend,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chart response: %w", err)
	}
	return marshalled, nil
}

type playerSummaryData struct {
	Name    string `json:"name"`
	Wins    int    `json:"wins"`
	WinRate string `json:"win_rate"`
}

type pointSummaryResponse struct {
	Success         bool              `json:"success"`
	SessionID       string            `json:"session_id"`
	Date            string            `json:"date"`
	Games           int               `json:"games"`
	Trend           float64           `json:"trend"`
	PlayerOne       playerSummaryData `json:"player_one"`
	PlayerTwo       playerSummaryData `json:"player_two"`
	DurationMinutes int               `json:"duration_minutes"`
}

func PointSummaryToResponseData(summary app.PointSummary) ([]byte, error) {
	marshalled, err := json.Marshal(pointSummaryResponse{
		Success:   true,
		SessionID: summary.SessionID,
		Date:      summary.Date,
		Games:     summary.Games,
		Trend:     summary.Trend,
		PlayerOne: playerSummaryData{
			Name:    summary.PlayerOne.Name,
			Wins:    summary.PlayerOne.Wins,
			WinRate: summary.PlayerOne.WinRate,
		},
		PlayerTwo: playerSummaryData{
			Name:    summary.PlayerTwo.Name,
			Wins:    summary.PlayerTwo.Wins,
			WinRate: summary.PlayerTwo.WinRate,
		},
		DurationMinutes: summary.DurationMinutes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal point summary response: %w", err)
	}
	return marshalled, nil
}

type matchupStatsData struct {
	CharacterOne  string `json:"character_one"`
	CharacterTwo  string `json:"character_two"`
	TotalGames    int    `json:"total_games"`
	PlayerOneWins int    `json:"player_one_wins"`
	PlayerTwoWins int    `json:"player_two_wins"`
}

type sessionDetailResponse struct {
	Success             bool               `json:"success"`
	SessionID           string             `json:"session_id"`
	StartTime           string             `json:"start_time"`
	EndTime             string             `json:"end_time"`
	TotalGames          int                `json:"total_games"`
	PlayerOneWins       int                `json:"player_one_wins"`
	PlayerTwoWins       int                `json:"player_two_wins"`
	PlayerOneCharacters map[string]int     `json:"player_one_characters"`
	PlayerTwoCharacters map[string]int     `json:"player_two_characters"`
	MatchupStats        []matchupStatsData `json:"matchup_stats"`
	DurationMinutes     int                `json:"duration_minutes"`
}

func SessionDetailToResponseData(detail domain.SessionDetail) ([]byte, error) {
	matchups := make([]matchupStatsData, 0, len(detail.Matchups))
	for _, matchup := range detail.Matchups {
		matchups = append(matchups, matchupStatsData{
			CharacterOne:  matchup.CharacterOne,
			CharacterTwo:  matchup.CharacterTwo,
			TotalGames:    matchup.Games,
			PlayerOneWins: matchup.WinsOne,
			PlayerTwoWins: matchup.WinsTwo,
		})
	}

	marshalled, err := json.Marshal(sessionDetailResponse{
		Success:             true,
		SessionID:           detail.Session.ID,
		StartTime:           detail.Session.Start.Format(timestampLayout),
		EndTime:             detail.Session.End.Format(timestampLayout),
		TotalGames:          detail.Session.Games,
		PlayerOneWins:       detail.Session.WinsOne,
		PlayerTwoWins:       detail.Session.WinsTwo,
		PlayerOneCharacters: detail.CharactersOne,
		PlayerTwoCharacters: detail.CharactersTwo,
		MatchupStats:        matchups,
		DurationMinutes:     detail.Session.DurationMinutes(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session detail response: %w", err)
	}
	return marshalled, nil
}

type currentSessionResponse struct {
	Success   bool    `json:"success"`
	SessionID *string `json:"session_id"`
	StartTime *string `json:"start_time"`
	GameCount int     `json:"game_count"`
	IsActive  bool    `json:"is_active"`
}

func CurrentSessionToResponseData(current app.CurrentSession) ([]byte, error) {
	response := currentSessionResponse{
		Success: true,
	}
	if current.Session != nil {
		start := current.Session.Start.Format(timestampLayout)
		response.SessionID = &current.Session.ID
		response.StartTime = &start
		response.GameCount = current.Session.Games
		response.IsActive = current.IsActive
	}

	marshalled, err := json.Marshal(response)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal current session response: %w", err)
	}
	return marshalled, nil
}

type loggedMatchResponse struct {
	Success bool   `json:"success"`
	MatchID string `json:"match_id"`
}

type logMatchRequest struct {
	PlayedAt        *time.Time `json:"played_at"`
	Winner          string     `json:"winner"`
	CharacterOne    string     `json:"character_one"`
	CharacterTwo    string     `json:"character_two"`
	StocksRemaining *int       `json:"stocks_remaining"`
}

func (request *logMatchRequest) toMatch() domain.Match {
	match := domain.Match{
		Winner:          request.Winner,
		CharacterOne:    request.CharacterOne,
		CharacterTwo:    request.CharacterTwo,
		StocksRemaining: request.StocksRemaining,
	}
	if request.PlayedAt != nil {
		match.PlayedAt = *request.PlayedAt
	}
	return match
}

func LoggedMatchToResponseData(match domain.Match) ([]byte, error) {
	marshalled, err := json.Marshal(loggedMatchResponse{
		Success: true,
		MatchID: match.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal logged match response: %w", err)
	}
	return marshalled, nil
}
