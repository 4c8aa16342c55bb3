// Command siginfo generates a test waveform and prints its descriptive
// statistics.
//
// Examples:
//
//	siginfo --wave sine --freq 440
//	siginfo --wave square --freq 100 --rate 8000 --duration 0.5
//	siginfo --wave noise --seed 42
//	siginfo --list
package main

func main() {
	Execute()
}
