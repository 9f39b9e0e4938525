package manager_test

import (
	"io/ioutil"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/feel-easy/unogame/consts"
	"github.com/feel-easy/unogame/manager"
)

func init() {
	logger := logrus.New()
	logger.SetOutput(ioutil.Discard)
	manager.SetLogger(logger)
}

func TestCreateAndGet(t *testing.T) {
	instance, err := manager.Create(3, 1)
	require.NoError(t, err)
	require.NotNil(t, instance.Controller)
	defer manager.Delete(instance.ID)

	found, err := manager.Get(instance.ID)
	require.NoError(t, err)
	require.Equal(t, instance, found)
}

func TestCreateRejectsInvalidConfiguration(t *testing.T) {
	_, err := manager.Create(1, 1)
	require.Equal(t, consts.ErrorsInvalidConfiguration, err)
}

func TestGetUnknown(t *testing.T) {
	_, err := manager.Get(uuid.New())
	require.Equal(t, consts.ErrorsGameExist, err)
}

func TestDelete(t *testing.T) {
	instance, err := manager.Create(2, 1)
	require.NoError(t, err)

	manager.Delete(instance.ID)
	_, err = manager.Get(instance.ID)
	require.Equal(t, consts.ErrorsGameExist, err)
}

func TestInstancesAreIndependent(t *testing.T) {
	first, err := manager.Create(2, 1)
	require.NoError(t, err)
	defer manager.Delete(first.ID)
	second, err := manager.Create(2, 1)
	require.NoError(t, err)
	defer manager.Delete(second.ID)

	require.NotEqual(t, first.ID, second.ID)

	first.Controller.Start()
	require.True(t, first.Controller.IsRunning())
	require.False(t, second.Controller.IsRunning())

	require.GreaterOrEqual(t, len(manager.List()), 2)
}
