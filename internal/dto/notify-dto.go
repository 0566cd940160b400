package dto

type TokenDistribution struct {
	UserIDs  []string `json:"user_ids"`
	Message  string   `json:"message"`
	TimeSlot string   `json:"time_slot"`
}

type DistributionFailure struct {
	UserID string `json:"user_id"`
	Error  string `json:"error"`
}

type DistributionResult struct {
	Message   string                `json:"message"`
	SentCount int                   `json:"sent_count"`
	Failed    []DistributionFailure `json:"failed"`
}
