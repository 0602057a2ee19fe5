package models

// ParticipantTally is one participant's line in round robin standings.
type ParticipantTally struct {
	ParticipantID string  `json:"participantId"`
	MatchUpsWon   int     `json:"matchUpsWon"`
	MatchUpsLost  int     `json:"matchUpsLost"`
	SetsWon       int     `json:"setsWon"`
	SetsLost      int     `json:"setsLost"`
	GamesWon      int     `json:"gamesWon"`
	GamesLost     int     `json:"gamesLost"`
	MatchUpsPct   float64 `json:"matchUpsPct"`
	SetsPct       float64 `json:"setsPct"`
	GamesPct      float64 `json:"gamesPct"`
	GroupOrder    int     `json:"groupOrder"`
}
