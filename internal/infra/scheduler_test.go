package infra

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSweeper struct {
	calls   atomic.Int32
	removed int
	err     error
}

func (f *fakeSweeper) SweepExpired(ctx context.Context) (int, error) {
	f.calls.Add(1)
	return f.removed, f.err
}

func TestScheduler_RunNow(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	sweeper := &fakeSweeper{removed: 3}
	s := NewScheduler(sweeper, "", log)

	assert.Equal(t, 3, s.RunNow(context.Background()))
	assert.Equal(t, int32(1), sweeper.calls.Load())
	assert.Empty(t, hook.AllEntries())

	sweeper.err = errors.New("redis down")
	assert.Zero(t, s.RunNow(context.Background()))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestScheduler_StartStop(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	s := NewScheduler(&fakeSweeper{}, "@every 1h", log)

	require.NoError(t, s.Start())
	assert.Len(t, s.cron.Entries(), 1)
	s.Stop()
}

func TestScheduler_InvalidSpec(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	s := NewScheduler(&fakeSweeper{}, "every now and then", log)

	assert.Error(t, s.Start())
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug", "text")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	logger, err = NewLogger("", "")
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	_, err = NewLogger("loud", "json")
	assert.Error(t, err)
	_, err = NewLogger("info", "xml")
	assert.Error(t, err)
}
