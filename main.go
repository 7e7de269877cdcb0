package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"blobarena/game"
)

func main() {
	modeFlag := flag.String("mode", "classic", "game mode: classic, timeAttack, battleRoyale or team")
	flag.Parse()

	config := game.DefaultConfig()

	profile := game.NewMemoryProfile()
	profile.RecordLogin(time.Now())

	g := game.NewGame(config, *modeFlag, profile)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Blob Arena")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
