//go:build !integration

package main

import (
	"errors"
	"testing"
	"vestiaKiosk/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestRepositoriesClose_RunsEachCloserOnce(t *testing.T) {
	calls := 0
	repos := &repositories{closers: []func() error{
		func() error { calls++; return nil },
		func() error { calls++; return errors.New("already closed") },
	}}

	repos.close()
	repos.close()

	assert.Equal(t, 2, calls)
}

func TestInitRepositories_MemoryDriverWiresEveryStore(t *testing.T) {
	repos, err := initRepositories(&config.Config{
		Storage: config.StorageConfig{Driver: config.DriverMemory},
	}, nil, nil)
	assert.NoError(t, err)
	assert.NotNil(t, repos.catalog)
	assert.NotNil(t, repos.profiles)
	assert.NotNil(t, repos.sessions)
	assert.NotNil(t, repos.requests)
	assert.NotNil(t, repos.feedback)
	assert.Empty(t, repos.closers)
}
