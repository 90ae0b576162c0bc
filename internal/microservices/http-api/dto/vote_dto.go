package dto

// VoteSelection: dish IDs per meal category, keyed the way students submit them
type VoteSelection struct {
	Breakfast []string `json:"Breakfast"`
	Lunch     []string `json:"Lunch"`
	Dinner    []string `json:"Dinner"`
}

// SubmitVotesRequest: a student's weekly ballot
type SubmitVotesRequest struct {
	Week  int            `json:"week"`
	Votes *VoteSelection `json:"votes"`
}

type SubmitVotesResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// StudentVotingStatusResponse: the student view of the current window
type StudentVotingStatusResponse struct {
	VotingStatusResponse
	HasVoted bool `json:"hasVoted"`
}
