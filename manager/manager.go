package manager

import (
	"sort"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/feel-easy/unogame/consts"
	"github.com/feel-easy/unogame/game"
)

// The registry keeps every live game in the process. Each instance
// carries its own deck and state, so games never share rule state.
var games = hashmap.New()

var logger = logrus.New()

// SetLogger replaces the package logger.
func SetLogger(l *logrus.Logger) {
	logger = l
}

// Instance is one independently running game.
type Instance struct {
	ID         uuid.UUID
	Controller *game.Controller
}

// Create initializes a new game instance and registers it.
func Create(playerCount, humanCount int) (*Instance, error) {
	controller, err := game.New(playerCount, humanCount)
	if err != nil {
		return nil, err
	}
	instance := &Instance{
		ID:         uuid.New(),
		Controller: controller,
	}
	games.Set(instance.ID.String(), instance)
	logger.WithFields(logrus.Fields{
		"game":    instance.ID,
		"players": playerCount,
		"humans":  humanCount,
	}).Info("game created")
	return instance, nil
}

func Get(id uuid.UUID) (*Instance, error) {
	if v, ok := games.Get(id.String()); ok {
		return v.(*Instance), nil
	}
	return nil, consts.ErrorsGameExist
}

func Delete(id uuid.UUID) {
	games.Del(id.String())
	logger.WithField("game", id).Info("game deleted")
}

// List returns every registered instance in a stable order.
func List() []*Instance {
	list := make([]*Instance, 0)
	games.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Instance))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID.String() < list[j].ID.String()
	})
	return list
}
