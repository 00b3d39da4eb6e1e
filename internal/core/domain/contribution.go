package domain

// Contribution is the deposited amount a contributor holds against one
// campaign. There is at most one entry per (campaign, contributor) pair;
// repeated contributions accumulate into it.
type Contribution struct {
	CampaignID  int64
	Contributor string
	Amount      int64
}
