package main

import (
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/feel-easy/unogame/config"
	"github.com/feel-easy/unogame/consts"
	"github.com/feel-easy/unogame/event"
	"github.com/feel-easy/unogame/game"
	"github.com/feel-easy/unogame/save"
	"github.com/feel-easy/unogame/ui"
)

const autosaveName = "autosave"

func main() {
	cfg := config.Load()

	logger := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	saver, err := save.NewSaver(cfg.SaveDir, logger)
	if err != nil {
		logger.WithError(err).Fatal("save directory unavailable")
	}

	ui.Println("WELCOME TO UNO!")
	playerCount := ui.PromptIntegerInRange(consts.MinPlayers, consts.MaxPlayers, "Enter number of players (2-10):")
	humanCount := ui.PromptIntegerInRange(1, playerCount, "Enter number of human players:")

	listener := ui.ConsoleListener{}
	event.FirstCardPlayed.AddListener(listener)
	event.CardPlayed.AddListener(listener)
	event.ColorPicked.AddListener(listener)
	event.PlayerPassed.AddListener(listener)
	event.GameWon.AddListener(listener)

	controller, err := newController(cfg, playerCount, humanCount)
	if err != nil {
		logger.WithError(err).Fatal("game setup failed")
	}

	controller.State().AddObserver(func(state *game.State) {
		logger.WithFields(logrus.Fields{
			"current_player": state.CurrentPlayer().Name(),
			"direction":      state.DirectionSymbol(),
			"pending_draw":   state.PendingDrawCount(),
		}).Debug("state changed")
	})

	if cfg.Resume != "" {
		if err := saver.Load(controller.State(), cfg.Resume); err != nil {
			logger.WithError(err).Warn("resume failed, starting fresh")
		}
	}

	controller.Start()
	run(controller, saver, logger)
}

func newController(cfg config.Config, playerCount, humanCount int) (*game.Controller, error) {
	var controller *game.Controller
	var err error
	if cfg.Seeded {
		controller, err = game.NewSeeded(playerCount, humanCount, cfg.Seed)
	} else {
		controller, err = game.New(playerCount, humanCount)
	}
	if err != nil {
		return nil, err
	}
	if cfg.BotStrategy == "greedy" {
		controller.SetStrategy(game.NewGreedyStrategy())
	}
	return controller, nil
}

func run(controller *game.Controller, saver *save.Saver, logger *logrus.Logger) {
	state := controller.State()

	for controller.IsRunning() {
		currentPlayer := state.CurrentPlayer()

		if state.PendingDrawCount() > 0 {
			ui.Message.PenaltyAbsorbed(currentPlayer.Name(), state.PendingDrawCount())
			if err := controller.PlayTurn(consts.DrawChoice); err != nil {
				logger.WithError(err).Fatal("turn failed")
			}
		} else if currentPlayer.IsHuman() {
			playHumanTurn(controller, currentPlayer, logger)
		} else {
			if _, err := controller.MakeAIMove(); err != nil {
				logger.WithError(err).Fatal("AI turn failed")
			}
		}

		if _, err := saver.Save(state, autosaveName); err != nil {
			logger.WithError(err).Warn("autosave failed")
		}
	}

	if winner := controller.Winner(); winner != nil {
		ui.Printfln("Game over. Winner: %s", winner.Name())
	}
}

func playHumanTurn(controller *game.Controller, player *game.Player, logger *logrus.Logger) {
	state := controller.State()
	ui.Message.HumanPlayerTurnStarted(player.Name())
	ui.Message.TableState(state)
	ui.Message.Hand(player)

	for {
		choice := ui.PromptCardChoice(player.HandSize())
		err := controller.PlayTurn(choice)
		if err == nil {
			break
		}
		if err == consts.ErrorsInvalidPlay {
			ui.Printfln("%s", err)
			continue
		}
		logger.WithError(err).Fatal("turn failed")
	}

	if state.ColorChangeNeeded() && controller.IsRunning() {
		if err := controller.SelectColor(ui.PromptColor()); err != nil {
			logger.WithError(err).Fatal("color selection failed")
		}
	}
}
