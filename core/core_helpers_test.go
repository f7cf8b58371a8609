package core

import "github.com/courtside/courtside/schema"

// sampleTeams is the roster shared by the core tests.
func sampleTeams() []schema.TeamRecord {
	return []schema.TeamRecord{
		{TeamID: 101, TeamName: "Duke"},
		{TeamID: 202, TeamName: "North Carolina"},
		{TeamID: 303, TeamName: "Virginia"},
	}
}

// sampleGames spans January to March 2023.
func sampleGames() []schema.GameRecord {
	return []schema.GameRecord{
		{GameID: 1, Date: 20230105, Team1ID: 101, Location1: schema.Home, Score1: 78, Team2ID: 202, Location2: schema.Away, Score2: 70},
		{GameID: 2, Date: 20230110, Team1ID: 202, Location1: schema.Home, Score1: 65, Team2ID: 303, Location2: schema.Away, Score2: 65},
		{GameID: 3, Date: 20230110, Team1ID: 303, Location1: schema.Neutral, Score1: 80, Team2ID: 101, Location2: schema.Neutral, Score2: 72},
		{GameID: 4, Date: 20230201, Team1ID: 101, Location1: schema.Away, Score1: 60, Team2ID: 303, Location2: schema.Home, Score2: 59},
		{GameID: 5, Date: 20230215, Team1ID: 202, Location1: schema.Home, Score1: 90, Team2ID: 101, Location2: schema.Away, Score2: 85},
		{GameID: 6, Date: 20230301, Team1ID: 404, Location1: schema.Home, Score1: 50, Team2ID: 303, Location2: schema.Away, Score2: 40},
	}
}
