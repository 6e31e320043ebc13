package service

import (
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"cryptowise/internal/repository"
	"cryptowise/internal/utils"
)

var testNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestLogger() (*logrus.Logger, *logtest.Hook) {
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return log, hook
}

func newTestAccountService() (*AccountService, *logtest.Hook) {
	log, hook := newTestLogger()
	svc := NewAccountService(repository.NewUserRepository(), SHA256Hasher{}, "", utils.FixedClock(testNow), log)
	return svc, hook
}
