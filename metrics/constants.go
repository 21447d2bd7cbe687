package metrics

const (
	MTxTotal                  = "vault_tx_total"
	MFeesHarvestedTotal       = "vault_fees_harvested_total"
	MRewardsDistributedTotal  = "vault_rewards_distributed_total"
	MRewardRecipientsTotal    = "vault_reward_recipients_total"
	MKeeperRoundsTotal        = "keeper_rounds_total"
	MKeeperRoundDuration      = "keeper_round_duration_seconds"
	MKeeperPendingWithheld    = "keeper_pending_withheld"
	MKeeperLastRoundTimestamp = "keeper_last_round_timestamp_seconds"

	LTx     = "tx"
	LCode   = "code"
	LMint   = "mint"
	LTask   = "task"
	LStatus = "status"

	VStatusOK      = "ok"
	VStatusSkipped = "skipped"
	VStatusFailed  = "failed"
)
