package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"safezone/internal/errors"
	mockUC "safezone/internal/mocks/usecase"
	"safezone/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCleanup(t *testing.T) {
	report := &usecase.RetentionReport{
		DryRun:          true,
		IncidentCutoff:  time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		DeviceCutoff:    time.Date(2025, 10, 4, 0, 0, 0, 0, time.UTC),
		IncidentsPurged: 12,
		DevicesPurged:   3,
	}

	t.Run("dry run text", func(t *testing.T) {
		retention := mockUC.NewMockRetentionUsecase(t)
		retention.EXPECT().Sweep(context.Background(), true).Return(report, nil)
		var out bytes.Buffer

		require.NoError(t, runCleanup(context.Background(), &out, retention, true, false))

		assert.Equal(t,
			"would delete 12 incidents older than 2026-01-02\nwould delete 3 inactive devices older than 2025-10-04\n",
			out.String())
	})

	t.Run("json", func(t *testing.T) {
		retention := mockUC.NewMockRetentionUsecase(t)
		retention.EXPECT().Sweep(context.Background(), true).Return(report, nil)
		var out bytes.Buffer

		require.NoError(t, runCleanup(context.Background(), &out, retention, true, true))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, true, decoded["dry_run"])
		assert.EqualValues(t, 12, decoded["incidents"])
	})

	t.Run("sweep failure", func(t *testing.T) {
		retention := mockUC.NewMockRetentionUsecase(t)
		retention.EXPECT().Sweep(context.Background(), false).Return(nil, errors.New("locked"))

		err := runCleanup(context.Background(), &bytes.Buffer{}, retention, false, false)

		assert.ErrorContains(t, err, "locked")
	})
}
