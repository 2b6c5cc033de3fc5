package bank

// BankError is a custom error type for wallet-related errors
type BankError string

// Error implements the error interface
func (e BankError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoAccount             BankError = "no bank account"
	ErrAccountExists         BankError = "account already exists"
	ErrInsufficientBalance   BankError = "insufficient balance"
	ErrNegativeValue         BankError = "amount cannot be negative"
	ErrSameSenderAndReceiver BankError = "sender and receiver are the same account"
	ErrOnCooldown            BankError = "payday is still on cooldown"
	ErrNilConfig             BankError = "config cannot be nil"
	ErrNilAccountRepo        BankError = "account repository cannot be nil"
	ErrNilSettingsRepo       BankError = "settings repository cannot be nil"
	ErrNilClock              BankError = "clock cannot be nil"
)
