package slots

// SlotError is a custom error type for slot machine errors
type SlotError string

// Error implements the error interface
func (e SlotError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidBid      SlotError = "bid is outside the machine limits"
	ErrInvalidGuess    SlotError = "guess must be between 1 and 6"
	ErrOnCooldown      SlotError = "the machine is still cooling down"
	ErrNilConfig       SlotError = "config cannot be nil"
	ErrNilBankService  SlotError = "bank service cannot be nil"
	ErrNilSettingsRepo SlotError = "settings repository cannot be nil"
	ErrNilAccountRepo  SlotError = "account repository cannot be nil"
	ErrNilRoller       SlotError = "dice roller cannot be nil"
)
