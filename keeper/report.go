package keeper

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/mikotoken/vault/store"
)

const (
	TaskHarvest      = "harvest"
	TaskDistribution = "distribution"
	TaskFeeSchedule  = "fee_schedule"
)

// RoundReport records the outcome of one keeper round.
type RoundReport struct {
	Task       string
	StartedAt  uint64
	FinishedAt uint64
	Status     string
	Calls      uint64
	Amount     uint64 // harvested or distributed
	Recipients uint64
	NextIndex  uint64 // first entry not yet submitted
	Message    string
}

func (r *RoundReport) String() string {
	return fmt.Sprintf("RoundReport{%v status:%v calls:%v amount:%v next:%v msg:%q}",
		r.Task, r.Status, r.Calls, r.Amount, r.NextIndex, r.Message)
}

// ReportStore persists the last report of each task.
type ReportStore struct {
	store store.Store
}

// NewReportStore creates a report store on top of s.
func NewReportStore(s store.Store) *ReportStore {
	return &ReportStore{store: s}
}

func reportKey(task string) []byte {
	return []byte("kp/r/" + task)
}

// Save stores report as the last report of its task.
func (rs *ReportStore) Save(report *RoundReport) error {
	if err := rs.store.Put(reportKey(report.Task), report); err != nil {
		return errors.Wrapf(err, "failed to save %v report", report.Task)
	}
	return nil
}

// Last returns the last report of task, nil if none was saved.
func (rs *ReportStore) Last(task string) (*RoundReport, error) {
	report := &RoundReport{}
	err := rs.store.Get(reportKey(task), report)
	if err == store.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %v report", task)
	}
	return report, nil
}
