package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/MehmetGoekce/go-examples/internal/messaging/gochannel"
)

func runPatterns() {
	runStrategy()
	runFactory()
	runBuilder()
	runObserver()
}

// --- Strategy: interchangeable sort algorithms ---

type sortStrategy interface {
	Name() string
	Sort(values []int) []int
}

type stdSortStrategy struct{}

func (stdSortStrategy) Name() string { return "standard library sort" }

func (stdSortStrategy) Sort(values []int) []int {
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	return sorted
}

type bubbleSortStrategy struct{}

func (bubbleSortStrategy) Name() string { return "bubble sort" }

func (bubbleSortStrategy) Sort(values []int) []int {
	sorted := append([]int(nil), values...)
	for i := 0; i < len(sorted)-1; i++ {
		for j := 0; j < len(sorted)-1-i; j++ {
			if sorted[j] > sorted[j+1] {
				sorted[j], sorted[j+1] = sorted[j+1], sorted[j]
			}
		}
	}
	return sorted
}

// sortFunc lets a bare function act as a strategy.
type sortFunc func([]int) []int

func (f sortFunc) Name() string { return "function strategy" }

func (f sortFunc) Sort(values []int) []int { return f(values) }

type sorter struct {
	strategy sortStrategy
}

func (s *sorter) SetStrategy(strategy sortStrategy) { s.strategy = strategy }

func (s *sorter) Sort(values []int) []int {
	fmt.Printf("Sorting using %s\n", s.strategy.Name())
	return s.strategy.Sort(values)
}

func runStrategy() {
	fmt.Println("=== Strategy Pattern Example ===")

	numbers := []int{5, 3, 9, 1, 7, 2, 8, 4, 6}
	fmt.Printf("Original list: %v\n", numbers)

	s := &sorter{}

	s.SetStrategy(stdSortStrategy{})
	fmt.Printf("Result: %v\n", s.Sort(numbers))

	s.SetStrategy(bubbleSortStrategy{})
	fmt.Printf("Result: %v\n", s.Sort(numbers))

	s.SetStrategy(sortFunc(func(values []int) []int {
		sorted := append([]int(nil), values...)
		sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
		return sorted
	}))
	fmt.Printf("Result: %v\n", s.Sort(numbers))
}

// --- Factory: create documents without naming concrete types ---

type document interface {
	Open() string
	Save() string
}

type pdfDocument struct{}

func (pdfDocument) Open() string { return "Opening PDF document" }
func (pdfDocument) Save() string { return "Saving PDF document" }

type wordDocument struct{}

func (wordDocument) Open() string { return "Opening Word document" }
func (wordDocument) Save() string { return "Saving Word document" }

type spreadsheetDocument struct{}

func (spreadsheetDocument) Open() string { return "Opening Spreadsheet document" }
func (spreadsheetDocument) Save() string { return "Saving Spreadsheet document" }

var documentFactories = map[string]func() document{
	"pdf":         func() document { return pdfDocument{} },
	"word":        func() document { return wordDocument{} },
	"spreadsheet": func() document { return spreadsheetDocument{} },
}

func newDocument(kind string) (document, error) {
	factory, ok := documentFactories[kind]
	if !ok {
		return nil, fmt.Errorf("unknown document kind: %s", kind)
	}
	return factory(), nil
}

func runFactory() {
	fmt.Println("\n=== Factory Pattern Example ===")

	for _, kind := range []string{"pdf", "word", "spreadsheet", "presentation"} {
		doc, err := newDocument(kind)
		if err != nil {
			fmt.Printf("Factory error: %v\n", err)
			continue
		}
		fmt.Println(doc.Open())
		fmt.Println(doc.Save())
	}
}

// --- Builder: assemble an email step by step, validate on Build ---

type email struct {
	from    string
	to      []string
	cc      []string
	subject string
	body    string
}

func (e email) String() string {
	return fmt.Sprintf("From: %s\nTo: %s\nCc: %s\nSubject: %s\n\n%s",
		e.from, strings.Join(e.to, ", "), strings.Join(e.cc, ", "), e.subject, e.body)
}

type emailBuilder struct {
	email email
}

func newEmailBuilder() *emailBuilder { return &emailBuilder{} }

func (b *emailBuilder) From(from string) *emailBuilder { b.email.from = from; return b }

func (b *emailBuilder) To(to ...string) *emailBuilder { b.email.to = append(b.email.to, to...); return b }

func (b *emailBuilder) Cc(cc ...string) *emailBuilder { b.email.cc = append(b.email.cc, cc...); return b }

func (b *emailBuilder) Subject(subject string) *emailBuilder { b.email.subject = subject; return b }

func (b *emailBuilder) Body(body string) *emailBuilder { b.email.body = body; return b }

func (b *emailBuilder) Build() (email, error) {
	if b.email.from == "" {
		return email{}, errors.New("email needs a sender")
	}
	if len(b.email.to) == 0 {
		return email{}, errors.New("email needs at least one recipient")
	}
	if b.email.subject == "" {
		return email{}, errors.New("email needs a subject")
	}
	return b.email, nil
}

func runBuilder() {
	fmt.Println("\n=== Builder Pattern Example ===")

	message, err := newEmailBuilder().
		From("shop@example.com").
		To("john@example.com").
		Cc("archive@example.com").
		Subject("Your order has shipped").
		Body("Tracking code: SHIP-1A2B3C4D").
		Build()
	if err != nil {
		fmt.Printf("Builder error: %v\n", err)
		return
	}
	fmt.Println("Built email:")
	fmt.Println(message)

	if _, err := newEmailBuilder().Subject("No recipients").Build(); err != nil {
		fmt.Printf("Builder rejected incomplete email: %v\n", err)
	}
}

// --- Observer: a stock ticker, classic interface style and bus style ---

type stockEvent struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

type stockObserver interface {
	Update(event stockEvent)
}

type stockDisplay struct{ name string }

func (d stockDisplay) Update(event stockEvent) {
	fmt.Printf("[%s] %s is now at %.2f\n", d.name, event.Symbol, event.Price)
}

type stockAlert struct{ threshold float64 }

func (a stockAlert) Update(event stockEvent) {
	if event.Price > a.threshold {
		fmt.Printf("[alert] %s crossed %.2f!\n", event.Symbol, a.threshold)
	}
}

type stockMarket struct {
	observers []stockObserver
}

func (m *stockMarket) Register(o stockObserver) { m.observers = append(m.observers, o) }

func (m *stockMarket) Publish(event stockEvent) {
	for _, o := range m.observers {
		o.Update(event)
	}
}

func runObserver() {
	fmt.Println("\n=== Observer Pattern Example ===")

	fmt.Println("--- Classic observers ---")
	market := &stockMarket{}
	market.Register(stockDisplay{name: "dashboard"})
	market.Register(stockAlert{threshold: 150})
	market.Publish(stockEvent{Symbol: "GOOG", Price: 142.17})
	market.Publish(stockEvent{Symbol: "GOOG", Price: 151.03})

	fmt.Println("--- Message bus observers ---")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := gochannel.NewBus(slog.Default())
	defer bus.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		count := 0
		bus.Consume(ctx, "stocks.ticks", func(ctx context.Context, payload []byte) error {
			var event stockEvent
			if err := json.Unmarshal(payload, &event); err != nil {
				return err
			}
			fmt.Printf("[bus subscriber] %s is now at %.2f\n", event.Symbol, event.Price)
			count++
			if count == 2 {
				cancel()
			}
			return nil
		})
	}()

	bus.PublishEvent(ctx, "stocks.ticks", "GOOG", stockEvent{Symbol: "GOOG", Price: 152.40})
	bus.PublishEvent(ctx, "stocks.ticks", "AAPL", stockEvent{Symbol: "AAPL", Price: 227.82})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		fmt.Println("bus subscriber timed out")
	}
}
