package usecase

import (
	"context"
	"time"
)

// RetentionReport describes one sweep. In a dry run the counts are what
// would have been deleted.
type RetentionReport struct {
	DryRun          bool      `json:"dry_run"`
	IncidentCutoff  time.Time `json:"incident_cutoff"`
	DeviceCutoff    time.Time `json:"device_cutoff"`
	IncidentsPurged int64     `json:"incidents"`
	DevicesPurged   int64     `json:"devices"`
}

// RetentionUsecase removes data past its retention window.
type RetentionUsecase interface {
	Sweep(ctx context.Context, dryRun bool) (*RetentionReport, error)
}
