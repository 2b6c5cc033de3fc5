package blackjack

// GameError is a custom error type for blackjack table errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionAlreadyActive  GameError = "a round is already running at this table"
	ErrSessionNotActive      GameError = "no round is running at this table"
	ErrInvalidStateForAction GameError = "that action is not available right now"
	ErrInvalidBetAmount      GameError = "bet amount is outside the table limits"
	ErrNoSuchPlayer          GameError = "player has no hand this round"
	ErrCannotSplit           GameError = "hand cannot be split"
	ErrNilConfig             GameError = "config cannot be nil"
	ErrNilBankService        GameError = "bank service cannot be nil"
	ErrNilSettingsRepo       GameError = "settings repository cannot be nil"
	ErrNilAnnouncer          GameError = "announcer cannot be nil"
)
