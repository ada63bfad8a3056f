package game

// Input is the host's intent set for one tick
// Move and Fire are held levels; PauseToggle, Restart and Quit are one-shot
type Input struct {
	MoveLeft    bool
	MoveRight   bool
	Fire        bool
	PauseToggle bool
	Restart     bool
	Quit        bool
}
