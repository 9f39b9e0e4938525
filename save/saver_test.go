package save_test

import (
	"io/ioutil"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/feel-easy/unogame/game"
	"github.com/feel-easy/unogame/save"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(ioutil.Discard)
	return logger
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	saver, err := save.NewSaver(t.TempDir(), testLogger())
	require.NoError(t, err)

	source, err := game.NewSeeded(4, 1, 11)
	require.NoError(t, err)
	source.State().Restore(2, false, 4)

	fileName, err := saver.Save(source.State(), "midgame")
	require.NoError(t, err)
	require.Equal(t, "midgame.json", fileName)

	target, err := game.NewSeeded(4, 1, 12)
	require.NoError(t, err)
	require.NoError(t, saver.Load(target.State(), fileName))

	require.Equal(t, 2, target.State().CurrentPlayerIndex())
	require.False(t, target.State().Clockwise())
	require.Equal(t, 4, target.State().PendingDrawCount())
}

func TestSaveGeneratesTimestampedName(t *testing.T) {
	saver, err := save.NewSaver(t.TempDir(), testLogger())
	require.NoError(t, err)

	controller, err := game.NewSeeded(2, 1, 11)
	require.NoError(t, err)

	fileName, err := saver.Save(controller.State(), "")
	require.NoError(t, err)
	require.Regexp(t, `^uno_save_.*\.json$`, fileName)
}

func TestLoadMissingFile(t *testing.T) {
	saver, err := save.NewSaver(t.TempDir(), testLogger())
	require.NoError(t, err)

	controller, err := game.NewSeeded(2, 1, 11)
	require.NoError(t, err)
	require.Error(t, saver.Load(controller.State(), "nope.json"))
}

func TestList(t *testing.T) {
	saver, err := save.NewSaver(t.TempDir(), testLogger())
	require.NoError(t, err)

	names, err := saver.List()
	require.NoError(t, err)
	require.Empty(t, names)

	controller, err := game.NewSeeded(2, 1, 11)
	require.NoError(t, err)
	_, err = saver.Save(controller.State(), "one")
	require.NoError(t, err)
	_, err = saver.Save(controller.State(), "two")
	require.NoError(t, err)

	names, err = saver.List()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"one.json", "two.json"}, names)
}
