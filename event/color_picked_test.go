package event_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feel-easy/unogame/card/color"
	"github.com/feel-easy/unogame/event"
)

func TestColorPicked(t *testing.T) {
	listener := event.NewDummyListener()
	event.ColorPicked.AddListener(listener)

	payload := event.ColorPickedPayload{
		PlayerName: "Someone",
		Color:      color.Yellow,
	}
	event.ColorPicked.Emit(payload)

	require.Equal(t, []interface{}{payload}, listener.ReceivedPayloads())
}
