package domain

// GridSize is the number of rows and columns on every machine
const GridSize = 3

// Grid holds one symbol per cell, indexed [row][column]
type Grid [GridSize][GridSize]string

// Machine is an immutable slot machine definition from the catalog
type Machine struct {
	ID      string         `json:"id" yaml:"id"`
	Name    string         `json:"name" yaml:"name"`
	Theme   string         `json:"theme" yaml:"theme"`
	MinBet  int            `json:"min_bet" yaml:"min_bet"`
	MaxBet  int            `json:"max_bet" yaml:"max_bet"`
	Symbols []string       `json:"symbols" yaml:"symbols"`
	Payouts map[string]int `json:"payouts" yaml:"payouts"` // Pattern (symbol x3) -> multiplier
	Jackpot int            `json:"jackpot" yaml:"jackpot"` // Display amount only, never paid automatically
}

// Multiplier returns the payout multiplier for a pattern, 0 when absent
func (m *Machine) Multiplier(pattern string) int {
	return m.Payouts[pattern]
}

// SpinResult is the immutable outcome of a single spin
type SpinResult struct {
	Grid         Grid  `json:"symbols"`
	WinningLines []int `json:"winning_lines"` // Line indices 0-7 in evaluation order
	Payout       int   `json:"payout"`        // Already scaled by bet
	IsJackpot    bool  `json:"is_jackpot"`
}

// Settlement is what the ledger produced for one spin
type Settlement struct {
	Account      Account       `json:"account"`
	Transactions []Transaction `json:"transactions"`
}

// SpinOutcome is returned to callers of a spin
type SpinOutcome struct {
	MachineID    string        `json:"machine_id"`
	Bet          int           `json:"bet"`
	Result       SpinResult    `json:"result"`
	Trigger      string        `json:"trigger"` // loss, win, big_win or jackpot
	Balance      int           `json:"balance"`
	Account      Account       `json:"account"`
	Transactions []Transaction `json:"transactions"`
}
