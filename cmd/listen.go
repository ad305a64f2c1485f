package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/chordcraft/chordcraft/constants"
	"github.com/chordcraft/chordcraft/detect"
	"github.com/chordcraft/chordcraft/theory"
	"github.com/chordcraft/chordcraft/util"
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Detects chords from a live MIDI input",
	Long:  `Detects chords from a live MIDI input`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func reportHeld(held []string) {
	if len(held) < 2 {
		return
	}
	candidates := detect.Detect(strings.Join(held, " "))
	if len(candidates) == 0 {
		fmt.Printf("%v -> ?\n", strings.Join(held, " "))
		return
	}
	var names []string
	for _, c := range candidates {
		names = append(names, c.Root+c.Symbol)
	}
	fmt.Printf("%v -> %v\n", strings.Join(held, " "), strings.Join(names, ", "))
}

func listen() {
	defer midi.CloseDriver()
	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a MIDI input port")
		return
	}

	onNotes := make(map[uint8]bool)
	// a rolled chord arrives as several events; only report once it settles
	debounced := debounce.New(constants.ListenDebounce)

	report := func() {
		keys := util.GetKeysSorted(onNotes)
		held := make([]string, 0, len(keys))
		for _, k := range keys {
			held = append(held, theory.MidiToNote(int(k)))
		}
		debounced(func() { reportHeld(held) })
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			onNotes[key] = true
			report()
		case msg.GetNoteEnd(&ch, &key):
			delete(onNotes, key)
			report()
		default:
			// ignore
		}
	})

	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	time.Sleep(time.Second * 5000) // lol
	stop()
}
