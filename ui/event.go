package ui

import "fmt"

// Event is a single input, handled to completion before the next one
type Event interface {
	fmt.Stringer
	isEvent()
}

// Click is a primary button press at window pixel (X, Y), origin top-left
type Click struct {
	X, Y int
}

// Quit asks the event loop to stop
type Quit struct{}

// Restart discards the board and deals a new one
type Restart struct{}

func (Click) isEvent()   {}
func (Quit) isEvent()    {}
func (Restart) isEvent() {}

func (click Click) String() string {
	return fmt.Sprintf("Click(%d, %d)", click.X, click.Y)
}

func (Quit) String() string {
	return "Quit"
}

func (Restart) String() string {
	return "Restart"
}
