package main

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

func runFundamentals() {
	runEncapsulation()
	runComposition()
	runPolymorphism()
}

// --- Encapsulation: unexported state behind a small method set ---

type bankAccount struct {
	owner   string
	balance decimal.Decimal
	frozen  bool
}

func newBankAccount(owner string, openingBalance decimal.Decimal) *bankAccount {
	return &bankAccount{owner: owner, balance: openingBalance}
}

func (a *bankAccount) Balance() decimal.Decimal { return a.balance }

func (a *bankAccount) Deposit(amount decimal.Decimal) error {
	if a.frozen {
		return errors.New("account is frozen")
	}
	if !amount.IsPositive() {
		return errors.New("deposit must be positive")
	}
	a.balance = a.balance.Add(amount)
	return nil
}

func (a *bankAccount) Withdraw(amount decimal.Decimal) error {
	if a.frozen {
		return errors.New("account is frozen")
	}
	if !amount.IsPositive() {
		return errors.New("withdrawal must be positive")
	}
	if amount.GreaterThan(a.balance) {
		return errors.New("insufficient funds")
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

func (a *bankAccount) Freeze()   { a.frozen = true }
func (a *bankAccount) Unfreeze() { a.frozen = false }

func runEncapsulation() {
	fmt.Println("=== Encapsulation Example ===")

	account := newBankAccount("John Doe", decimal.NewFromFloat(100.00))
	fmt.Printf("Opening balance: CHF%s\n", account.Balance().StringFixed(2))

	account.Deposit(decimal.NewFromFloat(50.00))
	fmt.Printf("After deposit: CHF%s\n", account.Balance().StringFixed(2))

	if err := account.Withdraw(decimal.NewFromFloat(500.00)); err != nil {
		fmt.Printf("Withdrawal rejected: %v\n", err)
	}

	account.Freeze()
	fmt.Println("Account frozen")
	if err := account.Deposit(decimal.NewFromFloat(10.00)); err != nil {
		fmt.Printf("Deposit rejected: %v\n", err)
	}
	account.Unfreeze()
	fmt.Println("Account unfrozen")
	fmt.Printf("Final balance: CHF%s\n", account.Balance().StringFixed(2))
}

// --- Composition: Go's take on inheritance is struct embedding ---

type vehicle struct {
	brand string
	model string
}

func (v *vehicle) Start() string { return "Vehicle engine started" }
func (v *vehicle) Stop() string  { return "Vehicle engine stopped" }

type car struct {
	vehicle
	electric bool
}

// Start shadows the embedded method, the Go version of an override.
func (c *car) Start() string {
	if c.electric {
		return "Car silently powered on"
	}
	return "Car engine started with a roar"
}

type motorcycle struct {
	vehicle
	hasSidecar bool
}

func (m *motorcycle) Start() string { return "Motorcycle engine started with a buzz" }

func (m *motorcycle) Wheelie() string {
	if m.hasSidecar {
		return "Cannot do a wheelie with a sidecar!"
	}
	return "Doing a wheelie!"
}

func runComposition() {
	fmt.Println("\n=== Composition Example ===")

	base := &vehicle{brand: "Generic", model: "Base"}
	fmt.Printf("%s %s: %s\n", base.brand, base.model, base.Start())

	gasCar := &car{vehicle: vehicle{brand: "Toyota", model: "Corolla"}}
	fmt.Printf("%s %s: %s\n", gasCar.brand, gasCar.model, gasCar.Start())

	electricCar := &car{vehicle: vehicle{brand: "Tesla", model: "Model 3"}, electric: true}
	fmt.Printf("%s %s: %s\n", electricCar.brand, electricCar.model, electricCar.Start())

	bike := &motorcycle{vehicle: vehicle{brand: "Harley", model: "Davidson"}, hasSidecar: true}
	fmt.Printf("%s %s: %s\n", bike.brand, bike.model, bike.Start())
	fmt.Println(bike.Wheelie())
	fmt.Println(bike.Stop()) // embedded method, no override needed
}

// --- Polymorphism: one interface, several processors ---

type paymentMethod interface {
	Charge(amount decimal.Decimal) string
}

type creditCardMethod struct{ lastFour string }

func (p creditCardMethod) Charge(amount decimal.Decimal) string {
	return fmt.Sprintf("Charged CHF%s to credit card ending %s", amount.StringFixed(2), p.lastFour)
}

type payPalMethod struct{ email string }

func (p payPalMethod) Charge(amount decimal.Decimal) string {
	return fmt.Sprintf("Charged CHF%s via PayPal account %s", amount.StringFixed(2), p.email)
}

type cryptoMethod struct{ wallet string }

func (p cryptoMethod) Charge(amount decimal.Decimal) string {
	return fmt.Sprintf("Transferred CHF%s worth of coins to wallet %s", amount.StringFixed(2), p.wallet)
}

func describeMethod(m paymentMethod) string {
	switch m := m.(type) {
	case creditCardMethod:
		return "credit card ending " + m.lastFour
	case payPalMethod:
		return "PayPal account " + m.email
	case cryptoMethod:
		return "crypto wallet " + m.wallet
	default:
		return "unknown payment method"
	}
}

func runPolymorphism() {
	fmt.Println("\n=== Polymorphism Example ===")

	methods := []paymentMethod{
		creditCardMethod{lastFour: "4242"},
		payPalMethod{email: "john@example.com"},
		cryptoMethod{wallet: "0xAB12"},
	}

	amount := decimal.NewFromFloat(49.99)
	for _, m := range methods {
		fmt.Printf("Using %s\n", describeMethod(m))
		fmt.Println(" ", m.Charge(amount))
	}
}
