package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/datepicker/core"
	"github.com/jask/datepicker/internal/config"
	"github.com/jask/datepicker/internal/tui"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "init" {
		def := config.Default()
		def.Keys = core.DefaultKeybindingsByAction(core.DefaultKeyBindings())
		if err := config.Save(def); err != nil {
			log.Fatalf("init config: %v", err)
		}
		fmt.Printf("wrote %s\n", config.Path())
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	pickerCfg, err := cfg.CoreConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	picker, err := core.New(pickerCfg)
	if err != nil {
		log.Fatalf("picker: %v", err)
	}
	keys := core.NewKeyRegistry(core.ApplyKeyOverrides(core.DefaultKeyBindings(), cfg.Keys))

	// log output would corrupt the alt screen unless it goes to a file
	if cfg.UI.DebugLog != "" {
		f, err := tea.LogToFile(cfg.UI.DebugLog, "datepicker")
		if err != nil {
			log.Fatalf("debug log: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	app := tui.New(picker, keys, cfg.UI)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	if d, ok := app.Selected(); ok {
		fmt.Println(d)
	}
}
