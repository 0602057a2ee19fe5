package matchupformat

// Format is a named canonical matchUp format code.
type Format struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Formats is the table of canonical codes; every entry round-trips.
var Formats = []Format{
	{Code: "SET3-S:6/TB7", Description: "Best of 3 tiebreak sets"},
	{Code: "SET5-S:6/TB7", Description: "Best of 5 tiebreak sets"},
	{Code: "SET3-S:6/TB7-F:TB10", Description: "Two tiebreak sets, 10-point match tiebreak"},
	{Code: "SET3-S:6/TB7-F:6", Description: "Best of 3 with advantage final set"},
	{Code: "SET5-S:6/TB7-F:6", Description: "Best of 5 with advantage final set"},
	{Code: "SET3-S:4/TB7", Description: "Best of 3 short sets to 4"},
	{Code: "SET3-S:4/TB7-F:TB10", Description: "Two short sets to 4, 10-point match tiebreak"},
	{Code: "SET3-S:4/TB5@3", Description: "Best of 3 short sets, tiebreak to 5 at 3-3"},
	{Code: "SET3-S:4NOAD/TB5@3", Description: "Best of 3 no-ad short sets, tiebreak to 5 at 3-3"},
	{Code: "SET1-S:8/TB7", Description: "One 8 game pro set"},
	{Code: "SET1-S:8/TB7@7", Description: "One 8 game pro set, tiebreak at 7-7"},
	{Code: "SET1-S:6/TB7", Description: "One standard tiebreak set"},
	{Code: "SET1-S:4/TB7", Description: "One short set to 4"},
	{Code: "SET1-S:4/TB5@3", Description: "One short set, tiebreak to 5 at 3-3"},
	{Code: "SET1-S:TB10", Description: "One 10-point match tiebreak"},
	{Code: "SET3-S:TB10", Description: "Best of 3 10-point tiebreaks"},
	{Code: "SET1-S:T20", Description: "One 20 minute timed set"},
	{Code: "SET3-S:T20", Description: "Best of 3 20 minute timed sets"},
	{Code: "T20", Description: "Simplified 20 minute timed set"},
	{Code: "SET1-S:6NOAD", Description: "One no-ad set to 6 without tiebreak"},
	{Code: "SET3-S:6NOAD/TB7NOAD", Description: "Best of 3 no-ad sets with no-ad tiebreaks"},
}

// DefaultCode is used when a draw does not name a format.
const DefaultCode = "SET3-S:6/TB7"
