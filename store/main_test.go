package store

import (
	"os"
	"testing"

	"canary-service/logging"
)

func TestMain(m *testing.M) {
	if err := logging.Init(logging.Config{}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
