package models

type LinkType string

const (
	LinkTypeWinner LinkType = "WINNER"
	LinkTypeLoser  LinkType = "LOSER"
	// LinkTypeDraw links finishing positions of a whole structure, e.g. group winners.
	LinkTypeDraw LinkType = "DRAW"
)

func (t LinkType) IsValid() bool {
	switch t {
	case LinkTypeWinner, LinkTypeLoser, LinkTypeDraw:
		return true
	}
	return false
}

type FeedProfile string

const (
	FeedProfileTopDown  FeedProfile = "TOP_DOWN"
	FeedProfileBottomUp FeedProfile = "BOTTOM_UP"
	FeedProfileDraw     FeedProfile = "DRAW"
)

func (p FeedProfile) IsValid() bool {
	switch p {
	case FeedProfileTopDown, FeedProfileBottomUp, FeedProfileDraw:
		return true
	}
	return false
}

type LinkSource struct {
	StructureID        string `json:"structureId"`
	RoundNumber        int    `json:"roundNumber,omitempty"`
	FinishingPositions []int  `json:"finishingPositions,omitempty"`
}

type LinkTarget struct {
	StructureID string      `json:"structureId"`
	RoundNumber int         `json:"roundNumber"`
	FeedProfile FeedProfile `json:"feedProfile"`
}

type Link struct {
	LinkType LinkType   `json:"linkType"`
	Source   LinkSource `json:"source"`
	Target   LinkTarget `json:"target"`
}
