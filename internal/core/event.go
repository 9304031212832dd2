package core

// Event is a screen transition request emitted by a game screen.
// A screen emits at most one event per update; the application shell drains it
// after the update and resets it to EventNone.
type Event int

const (
	EventNone Event = iota
	EventGoToGame
	EventGoToMainMenu
	EventGoToPauseMenu
	EventGoToShopMenu
	EventQuit
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventGoToGame:
		return "go_to_game"
	case EventGoToMainMenu:
		return "go_to_main_menu"
	case EventGoToPauseMenu:
		return "go_to_pause_menu"
	case EventGoToShopMenu:
		return "go_to_shop_menu"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}
