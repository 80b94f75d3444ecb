package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mgutz/ansi"
	"github.com/xyproto/erase"
)

var (
	hint  = ansi.ColorFunc("cyan")
	mouse = ansi.ColorFunc("magenta")
)

func main() {
	tty, err := erase.NewTTY()
	if err != nil {
		fmt.Fprintln(os.Stderr, ansi.Color(err.Error(), "red+b"))
		os.Exit(1)
	}
	defer tty.Close()

	terminal := erase.NewTerminal(os.Stdout)
	if err := terminal.EnableMouse(); err != nil {
		fmt.Fprintln(os.Stderr, ansi.Color(err.Error(), "red+b"))
		return
	}
	defer terminal.DisableMouse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	input := erase.NewInput(tty, nil)
	input.Start(ctx)

	fmt.Print(hint("Move the mouse, click or press keys. Press ESC twice to exit.") + "\r\n")
	escCount := 0
	for {
		select {
		case <-input.Done():
			if err := input.Err(); err != nil {
				fmt.Print(ansi.Color(err.Error(), "red") + "\r\n")
			}
			return
		case ev := <-input.Events():
			if ev.Kind == erase.EventMouse {
				fmt.Print(mouse(ev.String()) + "\r\n")
			} else {
				fmt.Print(ev.String() + "\r\n")
			}
			if ev.Kind == erase.EventKey && ev.Key == erase.KeyEsc {
				escCount++
				if escCount > 1 {
					fmt.Print("bye!\r\n")
					return
				}
				fmt.Print("Press ESC again to exit\r\n")
			}
		}
	}
}
